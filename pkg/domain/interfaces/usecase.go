package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"
	"encoding/json"

	"github.com/secmon-lab/forkrun/pkg/domain/model"
)

type UseCase interface {
	CreateFork(ctx context.Context, repoURL, org string) (*model.ForkRecord, error)
	DeleteRepository(ctx context.Context, input *model.DeleteRepositoryInput) (*model.DeleteRepositoryResult, error)
	SyncUpstream(ctx context.Context, input *model.SyncUpstreamInput) (json.RawMessage, error)

	SubmitTestCase(ctx context.Context, input *model.SubmitTestCaseInput) (*model.SubmitTestCaseResult, error)
	EnqueuePush(ctx context.Context, input *model.PushInput) error
	PushTestAssets(ctx context.Context, input *model.PushInput) (*model.PushSummary, error)
	UpdateWorkflow(ctx context.Context, input *model.PushInput) (*model.PushSummary, error)

	InsertTestReport(ctx context.Context, report *model.TestReport) (string, error)
	FindTestReport(ctx context.Context, repoURL, org string) (*model.StoredTestReport, error)
	GetTestReport(ctx context.Context, filename string) (*model.TestReport, error)
}
