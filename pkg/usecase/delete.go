package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/repository"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

// DeleteRepository removes the fork record and the stored test case for a
// repository. The fork on GitHub is left alone unless DeleteFork is set.
// Test-case removal failure is logged but does not fail the operation.
func (x *UseCase) DeleteRepository(ctx context.Context, input *model.DeleteRepositoryInput) (*model.DeleteRepositoryResult, error) {
	original, err := model.ParseRepoURL(input.RepoURL)
	if err != nil {
		return nil, err
	}
	org := model.NormalizeOrg(input.Org)

	record, err := x.clients.ForkRepo().Get(ctx, *original, org)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found in cache",
				goerr.V("repo", original.FullName()),
				goerr.V("org", org),
			)
		}
		return nil, goerr.Wrap(err, "failed to look up fork cache")
	}

	result := &model.DeleteRepositoryResult{
		RepoFullName: original.FullName(),
		Org:          org,
	}

	if input.DeleteFork {
		if err := x.clients.GitHub().DeleteRepo(ctx, record.ForkOwner, record.ForkName); err != nil {
			return nil, goerr.Wrap(err, "failed to delete fork on GitHub",
				goerr.V("fork", record.ForkFullName()),
			)
		}
		result.ForkDeleted = true
	}

	deleted, err := x.clients.ForkRepo().Delete(ctx, *original, org)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to delete fork record")
	}
	result.CacheDeleted = deleted

	tcDeleted, err := x.clients.TestCases().Delete(ctx, *original, org)
	if err != nil {
		logging.From(ctx).Warn("failed to delete test case",
			"repo", original.FullName(), "org", org, "error", err)
	} else {
		result.TestCaseDeleted = tcDeleted
	}

	logging.From(ctx).Info("repository deleted",
		"repo", result.RepoFullName,
		"org", org,
		"cache_deleted", result.CacheDeleted,
		"test_case_deleted", result.TestCaseDeleted,
		"fork_deleted", result.ForkDeleted,
	)

	return result, nil
}
