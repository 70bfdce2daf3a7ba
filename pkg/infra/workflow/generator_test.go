package workflow_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/infra/workflow"
)

func TestGenerate(t *testing.T) {
	for _, framework := range model.Frameworks {
		t.Run(string(framework), func(t *testing.T) {
			doc := gt.R1(workflow.Generate(framework, "test_case.json", "https://api.example.com")).NoError(t)

			gt.S(t, doc).Contains("workflow_dispatch")
			gt.S(t, doc).Contains("test_case.json")
			gt.S(t, doc).Contains("https://api.example.com/repos/test-results")
		})
	}

	t.Run("deterministic", func(t *testing.T) {
		a := gt.R1(workflow.Generate(model.FrameworkNodeJSExpress, "test_case.json", "http://localhost:8000")).NoError(t)
		b := gt.R1(workflow.Generate(model.FrameworkNodeJSExpress, "test_case.json", "http://localhost:8000")).NoError(t)
		gt.V(t, a).Equal(b)
	})

	t.Run("frameworks generate distinct documents", func(t *testing.T) {
		node := gt.R1(workflow.Generate(model.FrameworkNodeJSExpress, "test_case.json", "http://localhost:8000")).NoError(t)
		flask := gt.R1(workflow.Generate(model.FrameworkPythonFlask, "test_case.json", "http://localhost:8000")).NoError(t)
		gt.V(t, node == flask).Equal(false)
	})

	t.Run("unsupported framework is rejected", func(t *testing.T) {
		_, err := workflow.Generate(model.Framework("ruby_rails"), "test_case.json", "http://localhost:8000")
		gt.Error(t, err)
	})
}
