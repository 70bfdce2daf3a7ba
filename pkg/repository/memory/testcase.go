package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/repository"
)

// NewTestCaseStore creates an in-memory test-case repository, mainly for tests.
func NewTestCaseStore() interfaces.TestCaseRepository {
	return &testCaseStore{
		cases: make(map[string]json.RawMessage),
	}
}

type testCaseStore struct {
	mu    sync.RWMutex
	cases map[string]json.RawMessage
}

func (r *testCaseStore) Save(ctx context.Context, original model.RepoLocator, org string, testCase json.RawMessage) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := forkKey(original, org)
	r.cases[key] = append([]byte(nil), testCase...)
	return key, nil
}

func (r *testCaseStore) Load(ctx context.Context, original model.RepoLocator, org string) (json.RawMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	testCase, exists := r.cases[forkKey(original, org)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "test case not found",
			goerr.V("repo", original.FullName()),
			goerr.V("org", org),
		)
	}

	return append([]byte(nil), testCase...), nil
}

func (r *testCaseStore) Exists(ctx context.Context, original model.RepoLocator, org string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.cases[forkKey(original, org)]
	return exists, nil
}

func (r *testCaseStore) Delete(ctx context.Context, original model.RepoLocator, org string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := forkKey(original, org)
	if _, exists := r.cases[key]; !exists {
		return false, nil
	}
	delete(r.cases, key)
	return true, nil
}
