package bq

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

const (
	// BigQuery needs a moment to propagate a schema update before it accepts
	// rows carrying the new fields.
	insertRetryMax   = 5
	insertRetryDelay = 3 * time.Second
)

type Client struct {
	bqClient *bigquery.Client
	dataset  string
	tableID  string
}

var _ interfaces.BigQuery = (*Client)(nil)

func New(ctx context.Context, projectID, datasetID, tableID string, options ...option.ClientOption) (*Client, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		dataset:  datasetID,
		tableID:  tableID,
	}, nil
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, md *bigquery.TableMetadata) error {
	if err := x.bqClient.Dataset(x.dataset).Table(x.tableID).Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return nil
}

// GetMetadata implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error) {
	md, err := x.bqClient.Dataset(x.dataset).Table(x.tableID).Metadata(ctx)
	if err != nil {
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == 404 {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}

	return md, nil
}

// UpdateTable implements interfaces.BigQuery.
func (x *Client) UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.bqClient.Dataset(x.dataset).Table(x.tableID).Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return nil
}

const schemaMismatchMessage = "Input schema has more fields than BigQuery schema"

// IsSchemaNotFoundError reports whether err is BigQuery rejecting rows
// against a table whose schema has not caught up with a recent update. It
// unwraps goerr wrapping and recognizes both the gRPC InvalidArgument shape
// and the streaming inserter's per-row "no such field" errors.
func IsSchemaNotFoundError(err error) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := status.FromError(e); ok {
			if st.Code() == codes.InvalidArgument && strings.Contains(st.Message(), schemaMismatchMessage) {
				return true
			}
		}

		var putErr bigquery.PutMultiError
		if errors.As(e, &putErr) {
			for _, rowErr := range putErr {
				for _, item := range rowErr.Errors {
					if strings.Contains(item.Error(), "no such field") {
						return true
					}
				}
			}
		}
	}
	return false
}

// Insert implements interfaces.BigQuery with the streaming inserter. The
// schema argument keeps the interface aligned with schema inference at the
// call site; the inserter itself validates rows against the live table.
// With WithRetry the insert is re-attempted a bounded number of times when
// the row is rejected for a stale schema.
func (x *Client) Insert(ctx context.Context, schema bigquery.Schema, data any, opts ...interfaces.BigQueryInsertOption) error {
	cfg := &interfaces.BigQueryInsertConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	inserter := x.bqClient.Dataset(x.dataset).Table(x.tableID).Inserter()

	saver := &bigquery.StructSaver{
		Schema: schema,
		Struct: data,
	}

	err := inserter.Put(ctx, saver)
	for attempt := 1; err != nil && cfg.EnableRetry && attempt < insertRetryMax && IsSchemaNotFoundError(err); attempt++ {
		logging.From(ctx).Warn("insert rejected by stale schema, retrying",
			"attempt", attempt,
			"dataset", x.dataset,
			"table", x.tableID,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "insert cancelled while waiting for schema propagation",
				goerr.V("dataset", x.dataset),
				goerr.V("table", x.tableID),
			)
		case <-time.After(insertRetryDelay):
		}

		err = inserter.Put(ctx, saver)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to insert row",
			goerr.V("dataset", x.dataset),
			goerr.V("table", x.tableID),
		)
	}

	return nil
}
