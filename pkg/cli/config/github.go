package config

import (
	"log/slog"

	"github.com/secmon-lab/forkrun/pkg/domain/types"
	"github.com/secmon-lab/forkrun/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token types.GitHubToken `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("FORKRUN_GITHUB_TOKEN"),
			Required:    true,
		},
	}
}

func (x GitHub) New() (*githubapi.Client, error) {
	return githubapi.New(x.token)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
	)
}
