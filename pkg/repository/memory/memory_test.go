package memory_test

import (
	"testing"

	"github.com/secmon-lab/forkrun/pkg/repository/memory"
	"github.com/secmon-lab/forkrun/pkg/repository/testhelper"
)

func TestMemoryForkRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
