package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
	"github.com/secmon-lab/forkrun/pkg/utils/errutil"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

// pushJob carries a queued pipeline run together with a context detached
// from the originating request, so the worker logs under the request ID that
// enqueued the run.
type pushJob struct {
	ctx   context.Context
	input *model.PushInput
}

// EnqueuePush hands a push pipeline run to the background worker and returns
// immediately. The queue is bounded; a full queue is a retryable condition
// surfaced to the caller instead of blocking the request.
func (x *UseCase) EnqueuePush(ctx context.Context, input *model.PushInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	detached := logging.With(context.Background(), logging.From(ctx))
	detached = logging.InheritContextValues(detached, ctx)

	job := &pushJob{
		ctx:   detached,
		input: input,
	}

	select {
	case x.pushQueue <- job:
		logging.From(ctx).Info("push pipeline enqueued",
			"repo", input.Original.FullName(),
			"org", input.Org,
			"tech_stack", input.Framework,
			"queued", len(x.pushQueue),
		)
		return nil
	default:
		return goerr.Wrap(types.ErrQueueFull, "push queue is full, retry later",
			goerr.V("depth", cap(x.pushQueue)),
		)
	}
}

// StartPushWorker consumes the push queue until ctx is cancelled. Pipeline
// failures are reported through errutil and never stop the worker.
func (x *UseCase) StartPushWorker(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return

			case job := <-x.pushQueue:
				if _, err := x.PushTestAssets(job.ctx, job.input); err != nil {
					errutil.HandleError(job.ctx, "push pipeline failed", err)
				}
			}
		}
	}()
}
