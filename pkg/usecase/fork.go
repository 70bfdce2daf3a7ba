package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/repository"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

// CreateFork forks the repository and records where the fork lives. A cache
// hit returns the stored record without touching GitHub; re-forking is
// idempotent on the GitHub side, so the cached identity stays valid.
func (x *UseCase) CreateFork(ctx context.Context, repoURL, org string) (*model.ForkRecord, error) {
	original, err := model.ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}
	org = model.NormalizeOrg(org)

	cached, err := x.clients.ForkRepo().Get(ctx, *original, org)
	if err == nil {
		logging.From(ctx).Info("fork cache hit",
			"repo", original.FullName(),
			"org", org,
			"fork", cached.ForkFullName(),
		)
		return cached, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to look up fork cache")
	}

	resp, err := x.clients.GitHub().CreateFork(ctx, &interfaces.CreateForkInput{
		Owner: original.Owner,
		Repo:  original.Name,
		Org:   org,
	})
	if err != nil {
		return nil, err
	}

	record := &model.ForkRecord{
		Original:      *original,
		Org:           org,
		ForkOwner:     resp.Owner,
		ForkName:      resp.Name,
		DefaultBranch: resp.DefaultBranch,
		CreatedAt:     time.Now().UTC(),
		RawResponse:   resp.Raw,
	}
	if err := x.clients.ForkRepo().Put(ctx, record); err != nil {
		return nil, goerr.Wrap(err, "failed to save fork record")
	}

	logging.From(ctx).Info("fork created",
		"repo", original.FullName(),
		"org", org,
		"fork", record.ForkFullName(),
		"default_branch", record.DefaultBranch,
	)

	return record, nil
}
