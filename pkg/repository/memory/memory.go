package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/repository"
)

// New creates an in-memory fork repository
func New() interfaces.ForkRepository {
	return &forkRepository{
		records: make(map[string]*model.ForkRecord),
	}
}

type forkRepository struct {
	mu      sync.RWMutex
	records map[string]*model.ForkRecord
}

// forkKey builds the cache key. Colon separates the org part because GitHub
// owner and repository names cannot contain colons.
func forkKey(original model.RepoLocator, org string) string {
	return string(original.FullName()) + ":" + org
}

func (r *forkRepository) Get(ctx context.Context, original model.RepoLocator, org string) (*model.ForkRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[forkKey(original, org)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "fork record not found",
			goerr.V("repo", original.FullName()),
			goerr.V("org", org),
		)
	}

	return copyForkRecord(record), nil
}

func (r *forkRepository) Put(ctx context.Context, record *model.ForkRecord) error {
	if record.Original.Owner == "" || record.Original.Name == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "original locator is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[forkKey(record.Original, record.Org)] = copyForkRecord(record)
	return nil
}

func (r *forkRepository) Delete(ctx context.Context, original model.RepoLocator, org string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := forkKey(original, org)
	if _, exists := r.records[key]; !exists {
		return false, nil
	}
	delete(r.records, key)
	return true, nil
}

func (r *forkRepository) Exists(ctx context.Context, original model.RepoLocator, org string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.records[forkKey(original, org)]
	return exists, nil
}

func copyForkRecord(record *model.ForkRecord) *model.ForkRecord {
	copied := *record
	copied.RawResponse = append([]byte(nil), record.RawResponse...)
	return &copied
}
