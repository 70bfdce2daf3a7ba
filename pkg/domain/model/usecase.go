package model

import (
	"encoding/json"

	"github.com/secmon-lab/forkrun/pkg/domain/types"
)

type SubmitTestCaseInput struct {
	RepoURL   string
	Org       string
	Framework Framework
	TestCase  json.RawMessage

	// Update requires the test case to already exist (PUT semantics).
	Update bool
}

type SubmitTestCaseResult struct {
	FilePath     string             `json:"file_path"`
	RepoFullName types.RepoFullName `json:"repo_full_name"`
	Org          string             `json:"org"`
	Framework    Framework          `json:"tech_stack"`
}

type DeleteRepositoryInput struct {
	RepoURL string
	Org     string

	// DeleteFork also removes the forked repository on GitHub. Off by
	// default; local state is always removed.
	DeleteFork bool
}

type DeleteRepositoryResult struct {
	RepoFullName    types.RepoFullName `json:"repo_full_name"`
	Org             string             `json:"org"`
	CacheDeleted    bool               `json:"cache_deleted"`
	TestCaseDeleted bool               `json:"test_case_deleted"`
	ForkDeleted     bool               `json:"fork_deleted,omitempty"`
}

type SyncUpstreamInput struct {
	RepoURL string
	Org     string
	Branch  types.BranchName
}
