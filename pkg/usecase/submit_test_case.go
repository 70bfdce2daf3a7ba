package usecase

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
	"github.com/secmon-lab/forkrun/pkg/repository"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

// SubmitTestCase stores the test-case document for a repository and enqueues
// a push pipeline run. The repository must have been forked already. With
// Update set the test case must already exist, so a PUT cannot silently
// create state for a repository that was never set up.
func (x *UseCase) SubmitTestCase(ctx context.Context, input *model.SubmitTestCaseInput) (*model.SubmitTestCaseResult, error) {
	original, err := model.ParseRepoURL(input.RepoURL)
	if err != nil {
		return nil, err
	}
	org := model.NormalizeOrg(input.Org)

	if err := input.Framework.Validate(); err != nil {
		return nil, err
	}
	if !json.Valid(input.TestCase) {
		return nil, goerr.Wrap(types.ErrValidationFailed, "test case is not valid JSON")
	}

	forked, err := x.clients.ForkRepo().Exists(ctx, *original, org)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up fork cache")
	}
	if !forked {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found, fork it first",
			goerr.V("repo", original.FullName()),
			goerr.V("org", org),
		)
	}

	if input.Update {
		exists, err := x.clients.TestCases().Exists(ctx, *original, org)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to check test case existence")
		}
		if !exists {
			return nil, goerr.Wrap(types.ErrValidationFailed, "no existing test case to update, submit one first",
				goerr.V("repo", original.FullName()),
				goerr.V("org", org),
			)
		}
	}

	path, err := x.clients.TestCases().Save(ctx, *original, org, input.TestCase)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save test case")
	}

	logging.From(ctx).Info("test case saved",
		"repo", original.FullName(),
		"org", org,
		"path", path,
	)

	if err := x.EnqueuePush(ctx, &model.PushInput{
		Original:  *original,
		Org:       org,
		Framework: input.Framework,
	}); err != nil {
		return nil, err
	}

	return &model.SubmitTestCaseResult{
		FilePath:     path,
		RepoFullName: original.FullName(),
		Org:          org,
		Framework:    input.Framework,
	}, nil
}
