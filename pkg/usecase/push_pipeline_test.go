package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

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

// fakeRemote simulates the file state of a fork on GitHub behind a
// GitHubClientMock, so pipeline runs observe their own writes.
type fakeRemote struct {
	mu          sync.Mutex
	files       map[string][]byte
	writes      []string
	dispatched  int
	writeErrs   map[string]error
	dispatchErr error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		files:     map[string][]byte{},
		writeErrs: map[string]error{},
	}
}

func (x *fakeRemote) client() *mock.GitHubClientMock {
	return &mock.GitHubClientMock{
		GetFileContentFunc: func(ctx context.Context, input *interfaces.GetFileInput) (*interfaces.RemoteFile, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			content, ok := x.files[input.Path]
			if !ok {
				return nil, nil
			}
			return &interfaces.RemoteFile{
				Path:    input.Path,
				SHA:     "sha-" + input.Path,
				Content: content,
			}, nil
		},
		CreateOrUpdateFileFunc: func(ctx context.Context, input *interfaces.PutFileInput) error {
			x.mu.Lock()
			defer x.mu.Unlock()
			if err := x.writeErrs[input.Path]; err != nil {
				return err
			}
			x.files[input.Path] = input.Content
			x.writes = append(x.writes, input.Path)
			return nil
		},
		DispatchWorkflowFunc: func(ctx context.Context, input *interfaces.DispatchWorkflowInput) (types.WorkflowID, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			if x.dispatchErr != nil {
				return 0, x.dispatchErr
			}
			x.dispatched++
			return types.WorkflowID(161335), nil
		},
	}
}

func (x *fakeRemote) writeCount() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.writes)
}

type pipelineEnv struct {
	uc        interfaces.UseCase
	remote    *fakeRemote
	forkRepo  interfaces.ForkRepository
	testCases interfaces.TestCaseRepository
	slept     *int
}

func setupPipeline(t *testing.T) *pipelineEnv {
	remote := newFakeRemote()
	forkRepo := memory.New()
	testCases := memory.NewTestCaseStore()

	slept := 0
	clients := infra.New(
		infra.WithGitHub(remote.client()),
		infra.WithForkRepo(forkRepo),
		infra.WithTestCases(testCases),
		infra.WithReports(memory.NewReportStore()),
	)
	uc := usecase.New(clients,
		usecase.WithCallbackURL("https://forkrun.example.com"),
		usecase.WithSleeper(func(time.Duration) { slept++ }),
	)

	return &pipelineEnv{
		uc:        uc,
		remote:    remote,
		forkRepo:  forkRepo,
		testCases: testCases,
		slept:     &slept,
	}
}

var testLocator = model.RepoLocator{Owner: "acme", Name: "widget"}

func (x *pipelineEnv) seedFork(t *testing.T, branch types.BranchName) {
	gt.NoError(t, x.forkRepo.Put(context.Background(), &model.ForkRecord{
		Original:      testLocator,
		ForkOwner:     "forkrun-bot",
		ForkName:      "widget",
		DefaultBranch: branch,
		CreatedAt:     time.Now(),
	}))
}

func (x *pipelineEnv) seedTestCase(t *testing.T) {
	_, err := x.testCases.Save(context.Background(), testLocator, "",
		json.RawMessage(`{"test_cases":[]}`))
	gt.NoError(t, err)
}

func TestPushTestAssetsFirstRun(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "main")
	env.seedTestCase(t)

	input := &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	}

	summary := gt.R1(env.uc.PushTestAssets(context.Background(), input)).NoError(t)
	gt.V(t, summary.ForkFullName).Equal("forkrun-bot/widget")
	gt.V(t, summary.Branch).Equal("main")
	gt.True(t, summary.WorkflowTriggered)
	gt.V(t, summary.WorkflowID).Equal(161335)

	// First run bootstraps the runner files and creates everything.
	gt.A(t, summary.FilesPushed).
		Have("test-runner.js").
		Have("schema/jsonSchemaValidator.js").
		Have("schema/schema.json").
		Have(model.TestCasePath).
		Have(model.WorkflowPath)

	// A brand new workflow file needs the registration grace pause.
	gt.V(t, *env.slept).Equal(1)
}

func TestPushTestAssetsRepeatRunSkipsUnchanged(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "main")
	env.seedTestCase(t)

	input := &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	}

	gt.R1(env.uc.PushTestAssets(context.Background(), input)).NoError(t)
	firstWrites := env.remote.writeCount()

	summary := gt.R1(env.uc.PushTestAssets(context.Background(), input)).NoError(t)

	// Only the test case is rewritten; runner files exist and the workflow
	// content is unchanged.
	gt.A(t, summary.FilesPushed).Length(1).Have(model.TestCasePath)
	gt.True(t, summary.WorkflowTriggered)
	gt.V(t, env.remote.writeCount()).Equal(firstWrites + 1)
	gt.V(t, *env.slept).Equal(1)
}

func TestPushTestAssetsRewritesChangedWorkflow(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "main")
	env.seedTestCase(t)

	gt.R1(env.uc.PushTestAssets(context.Background(), &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	})).NoError(t)

	// Switching the tech stack regenerates different workflow content.
	summary := gt.R1(env.uc.PushTestAssets(context.Background(), &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkPythonFlask,
	})).NoError(t)

	gt.A(t, summary.FilesPushed).Have(model.TestCasePath).Have(model.WorkflowPath)
	// The workflow file already existed, so no extra grace pause.
	gt.V(t, *env.slept).Equal(1)
}

func TestPushTestAssetsMissingTestCase(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "main")

	_, err := env.uc.PushTestAssets(context.Background(), &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// The pipeline must fail before touching the remote.
	gt.V(t, env.remote.writeCount()).Equal(0)
}

func TestPushTestAssetsMissingFork(t *testing.T) {
	env := setupPipeline(t)
	env.seedTestCase(t)

	_, err := env.uc.PushTestAssets(context.Background(), &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
	gt.V(t, env.remote.writeCount()).Equal(0)
}

func TestPushTestAssetsTriggerFailureIsNonFatal(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "main")
	env.seedTestCase(t)
	env.remote.dispatchErr = errors.New("workflow not yet registered")

	summary := gt.R1(env.uc.PushTestAssets(context.Background(), &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	})).NoError(t)

	gt.False(t, summary.WorkflowTriggered)
	gt.S(t, summary.TriggerError).Contains("workflow not yet registered")
	gt.A(t, summary.FilesPushed).Have(model.TestCasePath).Have(model.WorkflowPath)
}

func TestPushTestAssetsStaticAssetFailureIsNonFatal(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "main")
	env.seedTestCase(t)
	env.remote.writeErrs["test-runner.js"] = errors.New("remote rejected")

	summary := gt.R1(env.uc.PushTestAssets(context.Background(), &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	})).NoError(t)

	gt.A(t, summary.FilesPushed).
		Have("schema/jsonSchemaValidator.js").
		Have(model.TestCasePath).
		Have(model.WorkflowPath)
	for _, path := range summary.FilesPushed {
		gt.V(t, path).NotEqual("test-runner.js")
	}
	gt.True(t, summary.WorkflowTriggered)
}

func TestPushTestAssetsBranchFallback(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "develop")
	env.seedTestCase(t)

	summary := gt.R1(env.uc.PushTestAssets(context.Background(), &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkSpringBootMaven,
	})).NoError(t)

	// Anything that is not main or master falls back to main.
	gt.V(t, summary.Branch).Equal("main")
}

func TestPushTestAssetsCallbackURLInWorkflow(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "main")
	env.seedTestCase(t)

	gt.R1(env.uc.PushTestAssets(context.Background(), &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	})).NoError(t)

	content := string(env.remote.files[model.WorkflowPath])
	gt.S(t, content).Contains("https://forkrun.example.com/repos/test-results")
}

func TestPushTestAssetsInvalidFramework(t *testing.T) {
	env := setupPipeline(t)

	_, err := env.uc.PushTestAssets(context.Background(), &model.PushInput{
		Original:  testLocator,
		Framework: model.Framework("ruby_rails"),
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}

func TestUpdateWorkflowForcesRewrite(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "main")
	env.seedTestCase(t)

	input := &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	}
	gt.R1(env.uc.PushTestAssets(context.Background(), input)).NoError(t)
	before := env.remote.writeCount()

	// Content is identical, but UpdateWorkflow writes anyway.
	summary := gt.R1(env.uc.UpdateWorkflow(context.Background(), input)).NoError(t)
	gt.A(t, summary.FilesPushed).Length(1).Have(model.WorkflowPath)
	gt.V(t, env.remote.writeCount()).Equal(before + 1)
	gt.True(t, summary.WorkflowTriggered)
}

func TestUpdateWorkflowRequiresFramework(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "main")

	_, err := env.uc.UpdateWorkflow(context.Background(), &model.PushInput{
		Original: testLocator,
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}

func TestPushTestAssetsWorkflowContentNormalized(t *testing.T) {
	env := setupPipeline(t)
	env.seedFork(t, "main")
	env.seedTestCase(t)

	input := &model.PushInput{
		Original:  testLocator,
		Framework: model.FrameworkNodeJSExpress,
	}
	gt.R1(env.uc.PushTestAssets(context.Background(), input)).NoError(t)

	// Surrounding whitespace does not count as a content change.
	current := string(env.remote.files[model.WorkflowPath])
	env.remote.files[model.WorkflowPath] = []byte("\n" + strings.TrimSpace(current) + "\n\n")
	before := env.remote.writeCount()

	summary := gt.R1(env.uc.PushTestAssets(context.Background(), input)).NoError(t)
	gt.A(t, summary.FilesPushed).Length(1).Have(model.TestCasePath)
	gt.V(t, env.remote.writeCount()).Equal(before + 1)
}
