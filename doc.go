/*
Package esload recreates Elasticsearch indices from a JSON configuration file
and bulk-loads documents from newline-delimited JSON action files. Actions are
streamed lazily and submitted through the official client's parallel bulk
indexer; per-document failures are reported without stopping the run.
*/
package esload
