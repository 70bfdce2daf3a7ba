package types

import "log/slog"

type (
	GitHubToken    string
	BranchName     string
	WorkflowID     int64
	RepoFullName   string
	RequestID      string
	ReportRecordID string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x RepoFullName) String() string { return string(x) }
