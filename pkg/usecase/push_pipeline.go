package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
	"github.com/secmon-lab/forkrun/pkg/infra/assets"
	"github.com/secmon-lab/forkrun/pkg/infra/workflow"
	"github.com/secmon-lab/forkrun/pkg/repository"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

const (
	msgAddStaticAsset = "Add %s for API testing [skip ci]"
	msgUpdateTestCase = "Update test case file [skip ci]"
	msgUpdateWorkflow = "Update GitHub Actions workflow for API testing [skip ci]"
)

// PushTestAssets converges the fork to a runnable state and attempts to
// trigger a CI run. The sequence is idempotent: static runner files are
// bootstrapped only on the first push, the test case is always overwritten,
// and the workflow file is written only when its generated content differs
// from what the fork already holds. A trigger failure is recorded in the
// summary instead of failing the run.
func (x *UseCase) PushTestAssets(ctx context.Context, input *model.PushInput) (*model.PushSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	org := model.NormalizeOrg(input.Org)
	logger := logging.From(ctx)

	record, err := x.resolveForkRecord(ctx, input.Original, org)
	if err != nil {
		return nil, err
	}
	branch := record.Branch()

	summary := &model.PushSummary{
		ForkFullName: record.ForkFullName(),
		Branch:       branch,
	}

	testCase, err := x.clients.TestCases().Load(ctx, input.Original, org)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(repository.ErrNotFound, "test case not found, submit a test case first",
				goerr.V("repo", input.Original.FullName()),
				goerr.V("org", org),
			)
		}
		return nil, goerr.Wrap(err, "failed to load test case")
	}

	// The canonical test-case path doubles as the first-push marker.
	remoteTestCase, err := x.clients.GitHub().GetFileContent(ctx, &interfaces.GetFileInput{
		Owner:  record.ForkOwner,
		Repo:   record.ForkName,
		Path:   model.TestCasePath,
		Branch: branch,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to probe test case in fork")
	}
	firstPush := remoteTestCase == nil

	if firstPush {
		x.bootstrapStaticAssets(ctx, record, branch, summary)
	}

	testCaseSHA := ""
	if remoteTestCase != nil {
		testCaseSHA = remoteTestCase.SHA
	}
	if err := x.clients.GitHub().CreateOrUpdateFile(ctx, &interfaces.PutFileInput{
		Owner:   record.ForkOwner,
		Repo:    record.ForkName,
		Path:    model.TestCasePath,
		Content: testCase,
		Message: msgUpdateTestCase,
		Branch:  branch,
		SHA:     testCaseSHA,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to push test case")
	}
	summary.FilesPushed = append(summary.FilesPushed, model.TestCasePath)

	if err := x.reconcileWorkflow(ctx, record, branch, input, false, summary); err != nil {
		return nil, err
	}

	x.triggerWorkflow(ctx, record, branch, summary)

	logger.Info("push pipeline finished",
		"fork", summary.ForkFullName,
		"branch", summary.Branch,
		"files_pushed", summary.FilesPushed,
		"workflow_triggered", summary.WorkflowTriggered,
		"first_push", firstPush,
	)

	return summary, nil
}

// UpdateWorkflow rewrites the workflow file from the requested tech stack
// regardless of what the fork currently holds, then attempts a dispatch.
func (x *UseCase) UpdateWorkflow(ctx context.Context, input *model.PushInput) (*model.PushSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	org := model.NormalizeOrg(input.Org)

	record, err := x.resolveForkRecord(ctx, input.Original, org)
	if err != nil {
		return nil, err
	}
	branch := record.Branch()

	summary := &model.PushSummary{
		ForkFullName: record.ForkFullName(),
		Branch:       branch,
	}

	if err := x.reconcileWorkflow(ctx, record, branch, input, true, summary); err != nil {
		return nil, err
	}

	x.triggerWorkflow(ctx, record, branch, summary)

	return summary, nil
}

func (x *UseCase) resolveForkRecord(ctx context.Context, original model.RepoLocator, org string) (*model.ForkRecord, error) {
	record, err := x.clients.ForkRepo().Get(ctx, original, org)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(repository.ErrNotFound, "fork not found, create a fork first",
				goerr.V("repo", original.FullName()),
				goerr.V("org", org),
			)
		}
		return nil, goerr.Wrap(err, "failed to look up fork cache")
	}
	return record, nil
}

// bootstrapStaticAssets pushes the embedded runner files that CI expects in
// the fork. Failures here are logged and skipped: a missing runner file makes
// the CI run fail visibly, which is an acceptable outcome for a best-effort
// bootstrap stage.
func (x *UseCase) bootstrapStaticAssets(ctx context.Context, record *model.ForkRecord, branch types.BranchName, summary *model.PushSummary) {
	logger := logging.From(ctx)

	for _, asset := range assets.StaticRunnerFiles() {
		existing, err := x.clients.GitHub().GetFileContent(ctx, &interfaces.GetFileInput{
			Owner:  record.ForkOwner,
			Repo:   record.ForkName,
			Path:   asset.RepoPath,
			Branch: branch,
		})
		if err != nil {
			logger.Warn("failed to probe static asset, skipping",
				"path", asset.RepoPath, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		if err := x.clients.GitHub().CreateOrUpdateFile(ctx, &interfaces.PutFileInput{
			Owner:   record.ForkOwner,
			Repo:    record.ForkName,
			Path:    asset.RepoPath,
			Content: asset.Content,
			Message: fmt.Sprintf(msgAddStaticAsset, asset.RepoPath),
			Branch:  branch,
		}); err != nil {
			logger.Warn("failed to push static asset, skipping",
				"path", asset.RepoPath, "error", err)
			continue
		}

		summary.FilesPushed = append(summary.FilesPushed, asset.RepoPath)
	}
}

// reconcileWorkflow generates the workflow document and writes it to the fork
// when needed. With force set the diff check is skipped and the file is
// rewritten unconditionally. A workflow file created for the first time is
// followed by a grace pause so GitHub can register it before a dispatch.
func (x *UseCase) reconcileWorkflow(ctx context.Context, record *model.ForkRecord, branch types.BranchName, input *model.PushInput, force bool, summary *model.PushSummary) error {
	callbackURL := x.callbackURL
	if input.CallbackURL != "" {
		callbackURL = input.CallbackURL
	}

	generated, err := workflow.Generate(input.Framework, model.TestCasePath, callbackURL)
	if err != nil {
		return err
	}

	current, err := x.clients.GitHub().GetFileContent(ctx, &interfaces.GetFileInput{
		Owner:  record.ForkOwner,
		Repo:   record.ForkName,
		Path:   model.WorkflowPath,
		Branch: branch,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to fetch current workflow")
	}

	if current != nil && !force {
		if strings.TrimSpace(string(current.Content)) == strings.TrimSpace(generated) {
			logging.From(ctx).Info("workflow unchanged, skipping write",
				"fork", record.ForkFullName())
			return nil
		}
	}

	sha := ""
	if current != nil {
		sha = current.SHA
	}
	if err := x.clients.GitHub().CreateOrUpdateFile(ctx, &interfaces.PutFileInput{
		Owner:   record.ForkOwner,
		Repo:    record.ForkName,
		Path:    model.WorkflowPath,
		Content: []byte(generated),
		Message: msgUpdateWorkflow,
		Branch:  branch,
		SHA:     sha,
	}); err != nil {
		return goerr.Wrap(err, "failed to push workflow")
	}
	summary.FilesPushed = append(summary.FilesPushed, model.WorkflowPath)

	if current == nil {
		x.sleep(workflowGracePeriod)
	}

	return nil
}

// triggerWorkflow dispatches the workflow by its well-known file name. A
// failure is recorded in the summary, not returned: a freshly registered
// workflow may not be dispatchable yet and the caller can re-trigger.
func (x *UseCase) triggerWorkflow(ctx context.Context, record *model.ForkRecord, branch types.BranchName, summary *model.PushSummary) {
	workflowID, err := x.clients.GitHub().DispatchWorkflow(ctx, &interfaces.DispatchWorkflowInput{
		Owner:      record.ForkOwner,
		Repo:       record.ForkName,
		WorkflowID: model.WorkflowFileName,
		Branch:     branch,
	})
	if err != nil {
		logging.From(ctx).Warn("failed to trigger workflow",
			"fork", record.ForkFullName(), "error", err)
		summary.TriggerError = err.Error()
		return
	}

	summary.WorkflowTriggered = true
	summary.WorkflowID = workflowID
}
