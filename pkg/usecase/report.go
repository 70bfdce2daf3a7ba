package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
	"github.com/secmon-lab/forkrun/pkg/repository"
	"github.com/secmon-lab/forkrun/pkg/utils/errutil"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

// InsertTestReport persists a test report received from a CI run and returns
// the name the record was stored under. When a BigQuery sink is configured
// the record is also streamed there; sink failures are reported but never
// lose the primary record.
func (x *UseCase) InsertTestReport(ctx context.Context, report *model.TestReport) (string, error) {
	if report.ReceivedAt.IsZero() {
		report.ReceivedAt = logging.CtxTime(ctx).UTC()
	}

	filename, err := x.clients.Reports().Insert(ctx, report)
	if err != nil {
		return "", goerr.Wrap(err, "failed to store test report")
	}

	logging.From(ctx).Info("test report stored",
		"filename", filename,
		"repo", report.RepoFullName,
		"org", report.Org,
		"workflow_run_id", report.WorkflowRunID,
	)

	if x.clients.BigQuery() != nil {
		if err := x.insertToBigQuery(ctx, report); err != nil {
			errutil.HandleError(ctx, "failed to insert test report to BigQuery", err)
		}
	}

	return filename, nil
}

func (x *UseCase) insertToBigQuery(ctx context.Context, report *model.TestReport) error {
	rawRecord := report.ToRawRecord()

	schema, schemaUpdated, err := createOrUpdateBigQueryTable(ctx, x.clients.BigQuery(), rawRecord)
	if err != nil {
		return err
	}

	return x.clients.BigQuery().Insert(ctx, schema, rawRecord,
		interfaces.WithRetry(schemaUpdated),
	)
}

// createOrUpdateBigQueryTable converges the destination table schema to one
// that can hold the record: the table is created when absent, and an existing
// schema is merged with the inferred one when they differ.
func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record *model.TestReportRawRecord) (schema bigquery.Schema, schemaUpdated bool, err error) {
	schema, err = bqs.Infer(record)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to infer report schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, false, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, false, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, false, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, false, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, true, nil
}

// FindTestReport returns the newest report for a repository. A report may
// have been filed under the fork's name while the query uses the original
// repository (or the other way around), so the fork cache is consulted to
// bridge the two identities.
//
// Organization filtering is asymmetric on purpose: a query with an org only
// accepts records carrying exactly that org, while a query without one
// prefers org-less records but falls back to the newest org-tagged record
// when no org-less record matches.
func (x *UseCase) FindTestReport(ctx context.Context, repoURL, org string) (*model.StoredTestReport, error) {
	original, err := model.ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}
	org = model.NormalizeOrg(org)
	fullName := original.FullName()

	var forkFullName types.RepoFullName
	if record, err := x.clients.ForkRepo().Get(ctx, *original, org); err == nil {
		forkFullName = record.ForkFullName()
	}

	records, err := x.clients.Reports().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list test reports")
	}

	var fallback *model.StoredTestReport
	for _, r := range records {
		if r.Report.RepoFullName != fullName &&
			(forkFullName == "" || r.Report.RepoFullName != forkFullName) {
			continue
		}

		if org != "" {
			if r.Report.Org == org {
				return r, nil
			}
			continue
		}

		if r.Report.Org == "" {
			return r, nil
		}
		if fallback == nil {
			fallback = r
		}
	}

	if fallback != nil {
		return fallback, nil
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "no test report found",
		goerr.V("repo", fullName),
		goerr.V("org", org),
	)
}

// GetTestReport fetches a single stored report by its record name.
func (x *UseCase) GetTestReport(ctx context.Context, filename string) (*model.TestReport, error) {
	return x.clients.Reports().Get(ctx, filename)
}
