package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
	"github.com/secmon-lab/forkrun/pkg/infra"
	"github.com/secmon-lab/forkrun/pkg/repository/memory"
	"github.com/secmon-lab/forkrun/pkg/usecase"
)

func TestEnqueuePushQueueFull(t *testing.T) {
	clients := infra.New()
	uc := usecase.New(clients, usecase.WithQueueDepth(2))
	ctx := context.Background()

	input := &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	}

	// No worker is running, so the queue fills up.
	gt.NoError(t, uc.EnqueuePush(ctx, input))
	gt.NoError(t, uc.EnqueuePush(ctx, input))

	err := uc.EnqueuePush(ctx, input)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrQueueFull))
}

func TestEnqueuePushValidatesBeforeQueueing(t *testing.T) {
	uc := usecase.New(infra.New(), usecase.WithQueueDepth(1))

	err := uc.EnqueuePush(context.Background(), &model.PushInput{
		Original: testLocator,
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrValidationFailed))

	// The invalid input must not occupy a queue slot.
	gt.NoError(t, uc.EnqueuePush(context.Background(), &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkPythonFlask,
	}))
}

func TestPushWorkerDrainsQueue(t *testing.T) {
	remote := newFakeRemote()
	forkRepo := memory.New()
	testCases := memory.NewTestCaseStore()

	clients := infra.New(
		infra.WithGitHub(remote.client()),
		infra.WithForkRepo(forkRepo),
		infra.WithTestCases(testCases),
		infra.WithReports(memory.NewReportStore()),
	)
	uc := usecase.New(clients,
		usecase.WithSleeper(func(time.Duration) {}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gt.NoError(t, forkRepo.Put(ctx, &model.ForkRecord{
		Original:      testLocator,
		ForkOwner:     "forkrun-bot",
		ForkName:      "widget",
		DefaultBranch: "main",
	}))
	_, err := testCases.Save(ctx, testLocator, "", json.RawMessage(`{"test_cases":[]}`))
	gt.NoError(t, err)

	uc.StartPushWorker(ctx)

	gt.NoError(t, uc.EnqueuePush(ctx, &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	}))

	// The worker runs detached; poll until the pipeline has written the
	// test case into the fake remote.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if remote.writeCount() > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	gt.True(t, remote.writeCount() > 0)
}
