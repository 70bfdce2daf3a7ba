package infra

import (
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
)

// Clients bundles the external collaborators the usecase layer depends on.
type Clients struct {
	github    interfaces.GitHubClient
	forkRepo  interfaces.ForkRepository
	testCases interfaces.TestCaseRepository
	reports   interfaces.ReportRepository
	bqClient  interfaces.BigQuery
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.github
}
func (x *Clients) ForkRepo() interfaces.ForkRepository {
	return x.forkRepo
}
func (x *Clients) TestCases() interfaces.TestCaseRepository {
	return x.testCases
}
func (x *Clients) Reports() interfaces.ReportRepository {
	return x.reports
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithForkRepo(repo interfaces.ForkRepository) Option {
	return func(x *Clients) {
		x.forkRepo = repo
	}
}

func WithTestCases(repo interfaces.TestCaseRepository) Option {
	return func(x *Clients) {
		x.testCases = repo
	}
}

func WithReports(repo interfaces.ReportRepository) Option {
	return func(x *Clients) {
		x.reports = repo
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
