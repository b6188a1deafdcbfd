package evaluation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/deploymenttheory/go-form-composer/internal/logger"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// DefaultConcurrency bounds batch evaluation when no limit is given
const DefaultConcurrency = 4

// EvaluateBatch evaluates many snapshots of the same process concurrently,
// at most concurrency at a time. Reports come back in snapshot order. The
// process is shared read-only across workers.
func (e *Evaluator) EvaluateBatch(ctx context.Context, process *model.Process, snapshots []model.FormData, concurrency int) ([]*Report, error) {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	logger.LogInfo("Starting batch evaluation", map[string]interface{}{
		"process":     process.ID,
		"snapshots":   len(snapshots),
		"concurrency": concurrency,
	})

	reports := make([]*Report, len(snapshots))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range snapshots {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("snapshot %d: %w", i+1, err)
			}

			reports[i] = e.Evaluate(process, snapshots[i])
			logger.LogDebug(fmt.Sprintf("Evaluated snapshot %d/%d", i+1, len(snapshots)), map[string]interface{}{
				"valid":   reports[i].Valid,
				"missing": len(reports[i].MissingFields),
				"invalid": len(reports[i].InvalidFields),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.LogError("Batch evaluation aborted", err, map[string]interface{}{
			"process": process.ID,
		})
		return nil, err
	}

	logger.LogInfo("Batch evaluation completed", map[string]interface{}{
		"process":   process.ID,
		"snapshots": len(snapshots),
	})
	return reports, nil
}
