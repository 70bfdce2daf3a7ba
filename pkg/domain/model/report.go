package model

import (
	"encoding/json"
	"time"

	"github.com/secmon-lab/forkrun/pkg/domain/types"
)

// TestReport is a single test-result submission from a CI run. Records are
// immutable once written; a newer submission supersedes an older one only by
// having a later ReceivedAt.
type TestReport struct {
	RepoURL        string             `json:"repo_url"`
	RepoFullName   types.RepoFullName `json:"repo_full_name"`
	Org            string             `json:"org"`
	WorkflowRunID  string             `json:"workflow_run_id"`
	WorkflowRunURL string             `json:"workflow_run_url"`
	ReceivedAt     time.Time          `json:"received_at"`
	TestResults    json.RawMessage    `json:"test_results"`
}

// StoredTestReport is a persisted report record together with the name it was
// stored under.
type StoredTestReport struct {
	Filename string     `json:"filename"`
	Report   TestReport `json:"data"`
}

// TestReportRawRecord is the analytics-sink shape of a TestReport. BigQuery
// column inference needs the timestamp as epoch microseconds and the payload
// as a plain string.
type TestReportRawRecord struct {
	ID             types.ReportRecordID `bigquery:"id" json:"id"`
	RepoURL        string               `bigquery:"repo_url" json:"repo_url"`
	RepoFullName   string               `bigquery:"repo_full_name" json:"repo_full_name"`
	Org            string               `bigquery:"org" json:"org"`
	WorkflowRunID  string               `bigquery:"workflow_run_id" json:"workflow_run_id"`
	WorkflowRunURL string               `bigquery:"workflow_run_url" json:"workflow_run_url"`
	ReceivedAt     int64                `bigquery:"received_at" json:"received_at"`
	TestResults    string               `bigquery:"test_results" json:"test_results"`
}

func (x *TestReport) ToRawRecord() *TestReportRawRecord {
	return &TestReportRawRecord{
		ID:             types.NewReportRecordID(),
		RepoURL:        x.RepoURL,
		RepoFullName:   string(x.RepoFullName),
		Org:            x.Org,
		WorkflowRunID:  x.WorkflowRunID,
		WorkflowRunURL: x.WorkflowRunURL,
		ReceivedAt:     x.ReceivedAt.UnixMicro(),
		TestResults:    string(x.TestResults),
	}
}
