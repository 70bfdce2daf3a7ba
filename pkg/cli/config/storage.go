package config

import (
	"log/slog"

	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/repository/localfs"
	"github.com/urfave/cli/v3"
)

// Storage holds the data directories for test cases and test reports.
type Storage struct {
	testCaseDir string
	reportDir   string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "test-case-dir",
			Usage:       "Directory for stored test case files",
			Category:    "Storage",
			Value:       "data/test_cases",
			Sources:     cli.EnvVars("FORKRUN_TEST_CASE_DIR"),
			Destination: &x.testCaseDir,
		},
		&cli.StringFlag{
			Name:        "test-result-dir",
			Usage:       "Directory for stored test result files",
			Category:    "Storage",
			Value:       "data/test_results",
			Sources:     cli.EnvVars("FORKRUN_TEST_RESULT_DIR"),
			Destination: &x.reportDir,
		},
	}
}

func (x *Storage) NewTestCaseStore() (interfaces.TestCaseRepository, error) {
	return localfs.NewTestCaseStore(x.testCaseDir)
}

func (x *Storage) NewReportStore() (interfaces.ReportRepository, error) {
	return localfs.NewReportStore(x.reportDir)
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("testCaseDir", x.testCaseDir),
		slog.Any("reportDir", x.reportDir),
	)
}
