package bq_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/infra/bq"
	"github.com/secmon-lab/forkrun/pkg/utils/testutil"
)

func TestIsSchemaNotFoundError(t *testing.T) {
	t.Run("detects gRPC InvalidArgument with schema mismatch message", func(t *testing.T) {
		err := status.Error(codes.InvalidArgument, "Input schema has more fields than BigQuery schema, extra fields: 'field1,field2'")
		result := bq.IsSchemaNotFoundError(err)
		gt.V(t, result).Equal(true)
	})

	t.Run("detects wrapped gRPC error with goerr", func(t *testing.T) {
		baseErr := status.Error(codes.InvalidArgument, "Input schema has more fields than BigQuery schema, extra fields: 'field1'")
		wrappedErr := goerr.Wrap(baseErr, "failed to insert")
		result := bq.IsSchemaNotFoundError(wrappedErr)
		gt.V(t, result).Equal(true)
	})

	t.Run("detects streaming inserter row error", func(t *testing.T) {
		putErr := bigquery.PutMultiError{
			{
				RowIndex: 0,
				Errors: bigquery.MultiError{
					&bigquery.Error{Message: "no such field: workflow_run_url."},
				},
			},
		}
		wrapped := goerr.Wrap(putErr, "failed to insert row")
		result := bq.IsSchemaNotFoundError(wrapped)
		gt.V(t, result).Equal(true)
	})

	t.Run("returns false for InvalidArgument with different message", func(t *testing.T) {
		err := status.Error(codes.InvalidArgument, "Invalid request parameters")
		result := bq.IsSchemaNotFoundError(err)
		gt.V(t, result).Equal(false)
	})

	t.Run("returns false for different gRPC code", func(t *testing.T) {
		err := status.Error(codes.PermissionDenied, "Input schema has more fields than BigQuery schema, extra fields: 'field1'")
		result := bq.IsSchemaNotFoundError(err)
		gt.V(t, result).Equal(false)
	})

	t.Run("returns false for row error without schema cause", func(t *testing.T) {
		putErr := bigquery.PutMultiError{
			{
				RowIndex: 0,
				Errors: bigquery.MultiError{
					&bigquery.Error{Message: "invalid value for timestamp"},
				},
			},
		}
		result := bq.IsSchemaNotFoundError(putErr)
		gt.V(t, result).Equal(false)
	})

	t.Run("returns false for non-gRPC error", func(t *testing.T) {
		err := errors.New("some other error")
		result := bq.IsSchemaNotFoundError(err)
		gt.V(t, result).Equal(false)
	})

	t.Run("detects schema error in deeply nested goerr wrapping", func(t *testing.T) {
		baseErr := status.Error(codes.InvalidArgument, "Input schema has more fields than BigQuery schema, extra fields: 'a,b,c'")
		wrapped1 := goerr.Wrap(baseErr, "level 1")
		wrapped2 := goerr.Wrap(wrapped1, "level 2")
		wrapped3 := goerr.Wrap(wrapped2, "level 3")
		result := bq.IsSchemaNotFoundError(wrapped3)
		gt.V(t, result).Equal(true)
	})
}

func TestSchemaUpdateAndRetry(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()
	tblName := time.Now().Format("schema_retry_test_20060102_150405")
	client, err := bq.New(ctx, projectID, datasetID, tblName)
	gt.NoError(t, err)

	t.Run("schema update and insert with retry", func(t *testing.T) {
		initialSchema := bigquery.Schema{
			{Name: "id", Type: bigquery.StringFieldType},
			{Name: "value", Type: bigquery.IntegerFieldType},
		}
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName,
			Schema: initialSchema,
		}))

		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.V(t, md).NotEqual(nil)

		updatedSchema := bigquery.Schema{
			{Name: "id", Type: bigquery.StringFieldType},
			{Name: "value", Type: bigquery.IntegerFieldType},
			{Name: "new_field", Type: bigquery.StringFieldType},
		}
		gt.NoError(t, client.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
			Schema: updatedSchema,
		}, md.ETag))

		data := struct {
			ID       string `bigquery:"id"`
			Value    int    `bigquery:"value"`
			NewField string `bigquery:"new_field"`
		}{
			ID:       "test-1",
			Value:    42,
			NewField: "test value",
		}

		// The insert should succeed either immediately or after retrying
		// through the schema propagation window.
		gt.NoError(t, client.Insert(ctx, updatedSchema, data, interfaces.WithRetry(true)))
	})
}
