package interfaces

import (
	"context"
	"encoding/json"

	"github.com/secmon-lab/forkrun/pkg/domain/model"
)

//go:generate moq -out ../mock/repository.go -pkg mock . ForkRepository TestCaseRepository ReportRepository

// ForkRepository is the identity cache: it owns the lifecycle of ForkRecord.
// Keys are (original locator, organization); an absent organization and an
// organization value are distinct keys. Put is an upsert (last writer wins).
type ForkRepository interface {
	Get(ctx context.Context, original model.RepoLocator, org string) (*model.ForkRecord, error)
	Put(ctx context.Context, record *model.ForkRecord) error
	Delete(ctx context.Context, original model.RepoLocator, org string) (bool, error)
	Exists(ctx context.Context, original model.RepoLocator, org string) (bool, error)
}

// TestCaseRepository stores the test-case document per (repository, org).
type TestCaseRepository interface {
	Save(ctx context.Context, original model.RepoLocator, org string, testCase json.RawMessage) (string, error)
	Load(ctx context.Context, original model.RepoLocator, org string) (json.RawMessage, error)
	Exists(ctx context.Context, original model.RepoLocator, org string) (bool, error)
	Delete(ctx context.Context, original model.RepoLocator, org string) (bool, error)
}

// ReportRepository is an append-only store of test reports. Insert never
// overwrites an existing record, and List returns records newest-first.
type ReportRepository interface {
	Insert(ctx context.Context, report *model.TestReport) (string, error)
	List(ctx context.Context) ([]*model.StoredTestReport, error)
	Get(ctx context.Context, filename string) (*model.TestReport, error)
}
