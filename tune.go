package esload

import (
	"context"

	"github.com/thalesfsp/ho"
)

//////
// Exported functionalities.
//////

// OptimizeBulkParameters runs a hyperparameter optimization using the
// Gaussian Process and Upper Confidence Bound (UCB) as acquisition function
// against chunk size and number of workers. Each trial reloads the actions
// file from scratch, so it should be pointed at a disposable index.
func (c *Client) OptimizeBulkParameters(
	// Context to be used in the optimization.
	ctx context.Context,

	// Path to the NDJSON actions file, reopened for every trial.
	actionsPath string,

	// Bulk options to be optimized.
	opts *BulkOptions,

	// Optimization configuration.
	optimizationConfig ho.OptimizationConfig,

	// Parameter range to be optimized.
	parameterRange []ho.ParameterRange[int],
) ([]int, error) {
	// Your benchmark function.
	benchmarkFunc := func(params ...int) error {
		// Parameters to be optimized.
		opts.ChunkSize = params[0]
		opts.NumWorkers = params[1]

		// Recompute the flush budget from the new chunk size.
		opts.FlushBytes = 0

		src, err := OpenActions(actionsPath)
		if err != nil {
			return err
		}

		defer src.Close()

		// We don't care about the report, just the error, if any must be
		// returned so the Gaussian Process can learn and optimize the
		// hyperparameters.
		if _, err := c.BulkLoad(ctx, src, opts, nil); err != nil {
			return err
		}

		return nil
	}

	// Run optimization with chosen configuration.
	optimalSize := ho.OptimizeHyperparameters[int](
		optimizationConfig,
		benchmarkFunc,
		parameterRange...,
	)

	return optimalSize, nil
}
