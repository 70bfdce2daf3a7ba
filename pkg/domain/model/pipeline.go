package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
)

// Framework selects the CI workflow flavor generated for a repository.
type Framework string

const (
	FrameworkSpringBootMaven Framework = "springboot_maven"
	FrameworkNodeJSExpress   Framework = "nodejs_express"
	FrameworkPythonFlask     Framework = "python_flask"
)

var Frameworks = []Framework{
	FrameworkSpringBootMaven,
	FrameworkNodeJSExpress,
	FrameworkPythonFlask,
}

func (x Framework) Validate() error {
	for _, f := range Frameworks {
		if x == f {
			return nil
		}
	}
	return goerr.Wrap(types.ErrValidationFailed, "unsupported tech_stack",
		goerr.V("tech_stack", x),
		goerr.V("supported", Frameworks),
	)
}

// Canonical paths of the assets the pipeline manages in a fork.
const (
	TestCasePath     = "test_case.json"
	WorkflowPath     = ".github/workflows/api-test.yml"
	WorkflowFileName = "api-test.yml"
)

// PushInput is a unit of push-pipeline work. It carries everything the worker
// needs so the originating request can return before the pipeline runs.
type PushInput struct {
	Original    RepoLocator
	Org         string
	Framework   Framework
	CallbackURL string
}

func (x *PushInput) Validate() error {
	if x.Original.Owner == "" || x.Original.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository locator is empty")
	}
	if err := x.Framework.Validate(); err != nil {
		return err
	}
	return nil
}

// PushSummary reports what a pipeline run actually did. Non-fatal stage
// failures are recorded here instead of aborting the run.
type PushSummary struct {
	ForkFullName      types.RepoFullName `json:"fork_full_name"`
	Branch            types.BranchName   `json:"branch"`
	FilesPushed       []string           `json:"files_pushed"`
	WorkflowTriggered bool               `json:"workflow_triggered"`
	WorkflowID        types.WorkflowID   `json:"workflow_id,omitempty"`
	TriggerError      string             `json:"trigger_error,omitempty"`
}
