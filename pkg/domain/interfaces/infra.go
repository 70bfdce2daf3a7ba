package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient BigQuery

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/forkrun/pkg/domain/types"
)

// GitHubClient is a thin gateway to the GitHub REST API. Every call is
// bounded by the client's own timeout and authenticated with a process-wide
// token.
type GitHubClient interface {
	CreateFork(ctx context.Context, input *CreateForkInput) (*CreateForkResult, error)
	DeleteRepo(ctx context.Context, owner, repo string) error

	// GetFileContent returns (nil, nil) when the file does not exist. Callers
	// use it as an existence probe, so "not found" is not a failure.
	GetFileContent(ctx context.Context, input *GetFileInput) (*RemoteFile, error)
	CreateOrUpdateFile(ctx context.Context, input *PutFileInput) error

	// DispatchWorkflow resolves the workflow file name to the numeric workflow
	// ID via the list-workflows endpoint and dispatches it on the given ref.
	DispatchWorkflow(ctx context.Context, input *DispatchWorkflowInput) (types.WorkflowID, error)

	MergeUpstream(ctx context.Context, input *MergeUpstreamInput) (json.RawMessage, error)
}

type CreateForkInput struct {
	Owner string
	Repo  string
	Org   string
}

type CreateForkResult struct {
	Owner         string
	Name          string
	FullName      types.RepoFullName
	DefaultBranch types.BranchName
	Raw           json.RawMessage
}

type GetFileInput struct {
	Owner  string
	Repo   string
	Path   string
	Branch types.BranchName
}

// RemoteFile is the current state of a file in a remote repository. SHA is the
// revision identifier required to update the file safely.
type RemoteFile struct {
	Path    string
	SHA     string
	Content []byte
}

type PutFileInput struct {
	Owner   string
	Repo    string
	Path    string
	Content []byte
	Message string
	Branch  types.BranchName

	// SHA of the revision observed during the probe. Empty for a new file.
	SHA string
}

type DispatchWorkflowInput struct {
	Owner      string
	Repo       string
	WorkflowID string
	Branch     types.BranchName
}

type MergeUpstreamInput struct {
	Owner  string
	Repo   string
	Branch types.BranchName
}

type BigQueryInsertOption func(*BigQueryInsertConfig)

type BigQueryInsertConfig struct {
	EnableRetry bool
}

func WithRetry(retry bool) BigQueryInsertOption {
	return func(c *BigQueryInsertConfig) {
		c.EnableRetry = retry
	}
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any, opts ...BigQueryInsertOption) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
