package localfs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/repository"
)

// NewTestCaseStore creates a file-backed test-case repository rooted at dir.
// Each (owner, repo, org) has exactly one file which is overwritten on save.
func NewTestCaseStore(dir string) (interfaces.TestCaseRepository, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	return &testCaseStore{dir: dir}, nil
}

type testCaseStore struct {
	dir string
}

func testCaseFilename(original model.RepoLocator, org string) string {
	name := sanitize(original.Owner) + "_" + sanitize(original.Name)
	if org != "" {
		name += "_" + sanitize(org)
	}
	return name + ".json"
}

func (r *testCaseStore) path(original model.RepoLocator, org string) string {
	return filepath.Join(r.dir, testCaseFilename(original, org))
}

func (r *testCaseStore) Save(ctx context.Context, original model.RepoLocator, org string, testCase json.RawMessage) (string, error) {
	path := r.path(original, org)

	if err := os.WriteFile(path, testCase, 0o644); err != nil {
		return "", goerr.Wrap(err, "failed to write test case file", goerr.V("path", path))
	}

	return path, nil
}

func (r *testCaseStore) Load(ctx context.Context, original model.RepoLocator, org string) (json.RawMessage, error) {
	path := r.path(original, org)

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "test case not found",
				goerr.V("repo", original.FullName()),
				goerr.V("org", org),
			)
		}
		return nil, goerr.Wrap(err, "failed to read test case file", goerr.V("path", path))
	}

	return data, nil
}

func (r *testCaseStore) Exists(ctx context.Context, original model.RepoLocator, org string) (bool, error) {
	if _, err := os.Stat(r.path(original, org)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to stat test case file")
	}
	return true, nil
}

func (r *testCaseStore) Delete(ctx context.Context, original model.RepoLocator, org string) (bool, error) {
	path := r.path(original, org)

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to remove test case file", goerr.V("path", path))
	}
	return true, nil
}
