package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/mock"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
	"github.com/secmon-lab/forkrun/pkg/infra"
	"github.com/secmon-lab/forkrun/pkg/repository"
	"github.com/secmon-lab/forkrun/pkg/repository/memory"
	"github.com/secmon-lab/forkrun/pkg/usecase"
)

func TestSubmitTestCase(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (interfaces.UseCase, interfaces.TestCaseRepository) {
		forkRepo := memory.New()
		gt.NoError(t, forkRepo.Put(ctx, &model.ForkRecord{
			Original:  testLocator,
			ForkOwner: "forkrun-bot",
			ForkName:  "widget",
		}))

		testCases := memory.NewTestCaseStore()
		clients := infra.New(
			infra.WithForkRepo(forkRepo),
			infra.WithTestCases(testCases),
		)
		return usecase.New(clients), testCases
	}

	t.Run("save and enqueue", func(t *testing.T) {
		uc, testCases := setup(t)
		result := gt.R1(uc.SubmitTestCase(ctx, &model.SubmitTestCaseInput{
			RepoURL:   "https://github.com/acme/widget",
			Framework: model.FrameworkNodeJSExpress,
			TestCase:  json.RawMessage(`{"test_cases":[]}`),
		})).NoError(t)

		gt.V(t, result.RepoFullName).Equal("acme/widget")
		gt.R1(testCases.Load(ctx, model.RepoLocator{Owner: "acme", Name: "widget"}, "")).NoError(t)
	})

	t.Run("unforked repository is rejected", func(t *testing.T) {
		uc, _ := setup(t)
		_, err := uc.SubmitTestCase(ctx, &model.SubmitTestCaseInput{
			RepoURL:   "https://github.com/acme/other",
			Framework: model.FrameworkNodeJSExpress,
			TestCase:  json.RawMessage(`{}`),
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("update requires an existing test case", func(t *testing.T) {
		uc, _ := setup(t)
		_, err := uc.SubmitTestCase(ctx, &model.SubmitTestCaseInput{
			RepoURL:   "https://github.com/acme/widget",
			Framework: model.FrameworkNodeJSExpress,
			TestCase:  json.RawMessage(`{}`),
			Update:    true,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("broken JSON is rejected", func(t *testing.T) {
		uc, _ := setup(t)
		_, err := uc.SubmitTestCase(ctx, &model.SubmitTestCaseInput{
			RepoURL:   "https://github.com/acme/widget",
			Framework: model.FrameworkNodeJSExpress,
			TestCase:  json.RawMessage(`{broken`),
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("unsupported tech stack is rejected", func(t *testing.T) {
		uc, _ := setup(t)
		_, err := uc.SubmitTestCase(ctx, &model.SubmitTestCaseInput{
			RepoURL:   "https://github.com/acme/widget",
			Framework: model.Framework("cobol_cics"),
			TestCase:  json.RawMessage(`{}`),
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestDeleteRepository(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, seed bool) (interfaces.UseCase, *mock.GitHubClientMock, interfaces.ForkRepository, interfaces.TestCaseRepository) {
		ghMock := &mock.GitHubClientMock{
			DeleteRepoFunc: func(ctx context.Context, owner, repo string) error {
				return nil
			},
		}
		forkRepo := memory.New()
		testCases := memory.NewTestCaseStore()
		clients := infra.New(
			infra.WithGitHub(ghMock),
			infra.WithForkRepo(forkRepo),
			infra.WithTestCases(testCases),
		)

		if seed {
			gt.NoError(t, forkRepo.Put(ctx, &model.ForkRecord{
				Original:  testLocator,
				ForkOwner: "forkrun-bot",
				ForkName:  "widget",
			}))
			_, err := testCases.Save(ctx, testLocator, "", json.RawMessage(`{}`))
			gt.NoError(t, err)
		}

		return usecase.New(clients), ghMock, forkRepo, testCases
	}

	t.Run("removes cache and test case, keeps the fork", func(t *testing.T) {
		uc, ghMock, forkRepo, testCases := setup(t, true)

		result := gt.R1(uc.DeleteRepository(ctx, &model.DeleteRepositoryInput{
			RepoURL: "https://github.com/acme/widget",
		})).NoError(t)

		gt.True(t, result.CacheDeleted)
		gt.True(t, result.TestCaseDeleted)
		gt.False(t, result.ForkDeleted)
		gt.A(t, ghMock.DeleteRepoCalls()).Length(0)

		_, err := forkRepo.Get(ctx, testLocator, "")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
		_, err = testCases.Load(ctx, testLocator, "")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("delete_fork also removes the GitHub fork", func(t *testing.T) {
		uc, ghMock, _, _ := setup(t, true)

		result := gt.R1(uc.DeleteRepository(ctx, &model.DeleteRepositoryInput{
			RepoURL:    "https://github.com/acme/widget",
			DeleteFork: true,
		})).NoError(t)

		gt.True(t, result.ForkDeleted)
		gt.A(t, ghMock.DeleteRepoCalls()).Length(1)
		gt.V(t, ghMock.DeleteRepoCalls()[0].Owner).Equal("forkrun-bot")
	})

	t.Run("unknown repository is not found", func(t *testing.T) {
		uc, _, _, _ := setup(t, false)
		_, err := uc.DeleteRepository(ctx, &model.DeleteRepositoryInput{
			RepoURL: "https://github.com/acme/unknown",
		})
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestSyncUpstream(t *testing.T) {
	ctx := context.Background()

	ghMock := &mock.GitHubClientMock{
		MergeUpstreamFunc: func(ctx context.Context, input *interfaces.MergeUpstreamInput) (json.RawMessage, error) {
			return json.RawMessage(`{"merge_type":"fast-forward"}`), nil
		},
	}
	forkRepo := memory.New()
	clients := infra.New(
		infra.WithGitHub(ghMock),
		infra.WithForkRepo(forkRepo),
	)
	uc := usecase.New(clients)

	gt.NoError(t, forkRepo.Put(ctx, &model.ForkRecord{
		Original:      testLocator,
		ForkOwner:     "forkrun-bot",
		ForkName:      "widget",
		DefaultBranch: "master",
	}))

	t.Run("merges on the fork's branch", func(t *testing.T) {
		raw := gt.R1(uc.SyncUpstream(ctx, &model.SyncUpstreamInput{
			RepoURL: "https://github.com/acme/widget",
		})).NoError(t)
		gt.S(t, string(raw)).Contains("fast-forward")

		calls := ghMock.MergeUpstreamCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Input.Owner).Equal("forkrun-bot")
		gt.V(t, calls[0].Input.Branch).Equal("master")
	})

	t.Run("explicit branch overrides the recorded one", func(t *testing.T) {
		gt.R1(uc.SyncUpstream(ctx, &model.SyncUpstreamInput{
			RepoURL: "https://github.com/acme/widget",
			Branch:  "develop",
		})).NoError(t)

		calls := ghMock.MergeUpstreamCalls()
		gt.V(t, calls[len(calls)-1].Input.Branch).Equal("develop")
	})

	t.Run("unknown fork is not found", func(t *testing.T) {
		_, err := uc.SyncUpstream(ctx, &model.SyncUpstreamInput{
			RepoURL: "https://github.com/acme/unknown",
		})
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}
