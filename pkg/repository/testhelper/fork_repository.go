// Package testhelper provides a shared contract test for ForkRepository
// implementations. Every backend must pass TestAll.
package testhelper

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/repository"
)

func TestAll(t *testing.T, repo interfaces.ForkRepository) {
	t.Run("PutAndGet", func(t *testing.T) { testPutAndGet(t, repo) })
	t.Run("OrgIsPartOfKey", func(t *testing.T) { testOrgIsPartOfKey(t, repo) })
	t.Run("PutIsUpsert", func(t *testing.T) { testPutIsUpsert(t, repo) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, repo) })
	t.Run("Exists", func(t *testing.T) { testExists(t, repo) })
}

func newRecord(owner, name, org, forkOwner string) *model.ForkRecord {
	return &model.ForkRecord{
		Original:      model.RepoLocator{Owner: owner, Name: name},
		Org:           org,
		ForkOwner:     forkOwner,
		ForkName:      name,
		DefaultBranch: "main",
		CreatedAt:     time.Now().UTC(),
		RawResponse:   json.RawMessage(`{"full_name":"` + forkOwner + `/` + name + `"}`),
	}
}

func testPutAndGet(t *testing.T, repo interfaces.ForkRepository) {
	ctx := context.Background()
	record := newRecord("acme", "widget", "", "forker")

	gt.NoError(t, repo.Put(ctx, record))

	got := gt.R1(repo.Get(ctx, record.Original, "")).NoError(t)
	gt.V(t, got.ForkOwner).Equal("forker")
	gt.V(t, got.ForkFullName()).Equal("forker/widget")
	gt.V(t, got.DefaultBranch).Equal("main")
}

func testOrgIsPartOfKey(t *testing.T, repo interfaces.ForkRepository) {
	ctx := context.Background()
	original := model.RepoLocator{Owner: "acme", Name: "gadget"}

	gt.NoError(t, repo.Put(ctx, newRecord("acme", "gadget", "org-a", "bot-a")))

	_, err := repo.Get(ctx, original, "")
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = repo.Get(ctx, original, "org-b")
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	got := gt.R1(repo.Get(ctx, original, "org-a")).NoError(t)
	gt.V(t, got.ForkOwner).Equal("bot-a")
}

func testPutIsUpsert(t *testing.T, repo interfaces.ForkRepository) {
	ctx := context.Background()
	original := model.RepoLocator{Owner: "acme", Name: "sprocket"}

	gt.NoError(t, repo.Put(ctx, newRecord("acme", "sprocket", "", "first")))
	gt.NoError(t, repo.Put(ctx, newRecord("acme", "sprocket", "", "second")))

	got := gt.R1(repo.Get(ctx, original, "")).NoError(t)
	gt.V(t, got.ForkOwner).Equal("second")
}

func testDelete(t *testing.T, repo interfaces.ForkRepository) {
	ctx := context.Background()
	original := model.RepoLocator{Owner: "acme", Name: "doodad"}

	gt.NoError(t, repo.Put(ctx, newRecord("acme", "doodad", "", "forker")))

	deleted := gt.R1(repo.Delete(ctx, original, "")).NoError(t)
	gt.True(t, deleted)

	_, err := repo.Get(ctx, original, "")
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	deleted = gt.R1(repo.Delete(ctx, original, "")).NoError(t)
	gt.False(t, deleted)
}

func testExists(t *testing.T, repo interfaces.ForkRepository) {
	ctx := context.Background()
	original := model.RepoLocator{Owner: "acme", Name: "whatsit"}

	exists := gt.R1(repo.Exists(ctx, original, "")).NoError(t)
	gt.False(t, exists)

	gt.NoError(t, repo.Put(ctx, newRecord("acme", "whatsit", "", "forker")))

	exists = gt.R1(repo.Exists(ctx, original, "")).NoError(t)
	gt.True(t, exists)
}
