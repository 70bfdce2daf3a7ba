package model

import (
	"encoding/json"
	"time"

	"github.com/secmon-lab/forkrun/pkg/domain/types"
)

// ForkRecord is the cached result of a fork creation. It maps an original
// repository (plus optional organization) to where the fork lives.
type ForkRecord struct {
	Original      RepoLocator      `firestore:"original" json:"original"`
	Org           string           `firestore:"org" json:"org"`
	ForkOwner     string           `firestore:"fork_owner" json:"fork_owner"`
	ForkName      string           `firestore:"fork_name" json:"fork_name"`
	DefaultBranch types.BranchName `firestore:"default_branch" json:"default_branch"`
	CreatedAt     time.Time        `firestore:"created_at" json:"created_at"`
	RawResponse   json.RawMessage  `firestore:"raw_response" json:"raw_response"`
}

func (x *ForkRecord) ForkFullName() types.RepoFullName {
	return types.RepoFullName(x.ForkOwner + "/" + x.ForkName)
}

// Branch returns the branch the pipeline operates on. Anything other than the
// two conventional defaults falls back to "main".
func (x *ForkRecord) Branch() types.BranchName {
	if x.DefaultBranch == "main" || x.DefaultBranch == "master" {
		return x.DefaultBranch
	}
	return "main"
}
