package localfs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/repository"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

// NewReportStore creates a file-backed report repository rooted at dir. Each
// submission becomes its own timestamped file; records are never overwritten.
func NewReportStore(dir string) (interfaces.ReportRepository, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	return &reportStore{dir: dir}, nil
}

type reportStore struct {
	dir string
}

func reportFilename(report *model.TestReport) string {
	parts := strings.SplitN(string(report.RepoFullName), "/", 2)
	name := sanitize(parts[0])
	if len(parts) == 2 {
		name += "_" + sanitize(parts[1])
	}
	if report.Org != "" {
		name += "_" + sanitize(report.Org)
	}
	return name + "_" + report.ReceivedAt.UTC().Format("20060102_150405.000000") + ".json"
}

func (r *reportStore) Insert(ctx context.Context, report *model.TestReport) (string, error) {
	filename := reportFilename(report)
	path := filepath.Join(r.dir, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal test report")
	}

	// O_EXCL keeps the store append-only: a name collision must not clobber
	// an existing record
	fd, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create test report file", goerr.V("path", path))
	}

	if _, err := fd.Write(data); err != nil {
		_ = fd.Close()
		return "", goerr.Wrap(err, "failed to write test report file", goerr.V("path", path))
	}
	if err := fd.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close test report file", goerr.V("path", path))
	}

	return filename, nil
}

func (r *reportStore) List(ctx context.Context) ([]*model.StoredTestReport, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read report directory", goerr.V("dir", r.dir))
	}

	var records []*model.StoredTestReport
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		report, err := r.readReport(entry.Name())
		if err != nil {
			// A single unreadable record should not break the scan
			logging.From(ctx).Warn("skipping unreadable test report file",
				"filename", entry.Name(), "error", err)
			continue
		}

		records = append(records, &model.StoredTestReport{
			Filename: entry.Name(),
			Report:   *report,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Report.ReceivedAt.Equal(records[j].Report.ReceivedAt) {
			return records[i].Filename > records[j].Filename
		}
		return records[i].Report.ReceivedAt.After(records[j].Report.ReceivedAt)
	})

	return records, nil
}

func (r *reportStore) Get(ctx context.Context, filename string) (*model.TestReport, error) {
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "invalid report filename",
			goerr.V("filename", filename),
		)
	}

	report, err := r.readReport(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, goerr.Wrap(repository.ErrNotFound, "test report not found",
				goerr.V("filename", filename),
			)
		}
		return nil, err
	}

	return report, nil
}

func (r *reportStore) readReport(filename string) (*model.TestReport, error) {
	data, err := os.ReadFile(cleanJoin(r.dir, filename))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read test report file", goerr.V("filename", filename))
	}

	var report model.TestReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode test report file", goerr.V("filename", filename))
	}

	return &report, nil
}
