package usecase

import (
	"context"
	"encoding/json"

	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

// SyncUpstream merges the upstream repository into the fork's branch so a
// stale fork can pick up new commits without re-forking.
func (x *UseCase) SyncUpstream(ctx context.Context, input *model.SyncUpstreamInput) (json.RawMessage, error) {
	original, err := model.ParseRepoURL(input.RepoURL)
	if err != nil {
		return nil, err
	}
	org := model.NormalizeOrg(input.Org)

	record, err := x.resolveForkRecord(ctx, *original, org)
	if err != nil {
		return nil, err
	}

	branch := input.Branch
	if branch == "" {
		branch = record.Branch()
	}

	raw, err := x.clients.GitHub().MergeUpstream(ctx, &interfaces.MergeUpstreamInput{
		Owner:  record.ForkOwner,
		Repo:   record.ForkName,
		Branch: branch,
	})
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("upstream synced",
		"fork", record.ForkFullName(),
		"branch", branch,
	)

	return raw, nil
}
