package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/repository"
)

// NewReportStore creates an in-memory report repository, mainly for tests.
func NewReportStore() interfaces.ReportRepository {
	return &reportStore{
		reports: make(map[string]*model.TestReport),
	}
}

type reportStore struct {
	mu      sync.RWMutex
	reports map[string]*model.TestReport
	seq     int
}

func (r *reportStore) Insert(ctx context.Context, report *model.TestReport) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	name := strings.ReplaceAll(string(report.RepoFullName), "/", "_")
	if report.Org != "" {
		name += "_" + report.Org
	}
	filename := fmt.Sprintf("%s_%s_%06d.json", name, report.ReceivedAt.UTC().Format("20060102_150405"), r.seq)

	copied := *report
	r.reports[filename] = &copied
	return filename, nil
}

func (r *reportStore) List(ctx context.Context) ([]*model.StoredTestReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*model.StoredTestReport
	for filename, report := range r.reports {
		records = append(records, &model.StoredTestReport{
			Filename: filename,
			Report:   *report,
		})
	}

	// Newest first; sequence breaks ties for reports in the same instant
	sort.Slice(records, func(i, j int) bool {
		if records[i].Report.ReceivedAt.Equal(records[j].Report.ReceivedAt) {
			return records[i].Filename > records[j].Filename
		}
		return records[i].Report.ReceivedAt.After(records[j].Report.ReceivedAt)
	})

	return records, nil
}

func (r *reportStore) Get(ctx context.Context, filename string) (*model.TestReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[filename]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "test report not found",
			goerr.V("filename", filename),
		)
	}

	copied := *report
	return &copied, nil
}
