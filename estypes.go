package esload

//////
// Count API.
//////

// CountResponse represents the response from the Elasticsearch count API.
type CountResponse struct {
	Count  int64       `json:"count"`
	Shards *ShardStats `json:"_shards"`
}

// ShardStats contains information about shards.
type ShardStats struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

//////
// Indices API.
//////

// AcknowledgedResponse represents the acknowledgment envelope returned by the
// index create and delete APIs.
type AcknowledgedResponse struct {
	Acknowledged       bool   `json:"acknowledged"`
	ShardsAcknowledged bool   `json:"shards_acknowledged"`
	Index              string `json:"index"`
}

//////
// Error envelope.
//////

// ErrorResponse represents the standard Elasticsearch error envelope.
type ErrorResponse struct {
	Status int         `json:"status"`
	Error  *ErrorCause `json:"error"`
}

// ErrorCause contains the error detail, possibly nested.
type ErrorCause struct {
	Type     string      `json:"type"`
	Reason   string      `json:"reason"`
	Index    string      `json:"index"`
	CausedBy *ErrorCause `json:"caused_by"`
}
