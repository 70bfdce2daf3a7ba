package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/forkrun/pkg/cli/config"
	"github.com/secmon-lab/forkrun/pkg/controller/server"
	"github.com/secmon-lab/forkrun/pkg/infra"
	"github.com/secmon-lab/forkrun/pkg/repository/memory"
	"github.com/secmon-lab/forkrun/pkg/usecase"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr        string
		callbackURL string

		github    config.GitHub
		firestore config.Firestore
		storage   config.Storage
		bigQuery  config.BigQuery
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("FORKRUN_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "callback-url",
			Usage:       "Base URL CI runs post test results back to",
			Value:       "http://localhost:8000",
			Sources:     cli.EnvVars("FORKRUN_CALLBACK_URL"),
			Destination: &callbackURL,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			firestore.Flags(),
			storage.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("CallbackURL", callbackURL),
				slog.Any("GitHub", github),
				slog.Any("Firestore", firestore),
				slog.Any("Storage", storage),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			testCases, err := storage.NewTestCaseStore()
			if err != nil {
				return err
			}
			reports, err := storage.NewReportStore()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHub(ghClient),
				infra.WithTestCases(testCases),
				infra.WithReports(reports),
			}

			if firestore.Enabled() {
				forkRepo, err := firestore.NewRepository(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithForkRepo(forkRepo))
			} else {
				logging.Default().Warn("firestore is not configured, fork records are kept in memory")
				infraOptions = append(infraOptions, infra.WithForkRepo(memory.New()))
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients,
				usecase.WithCallbackURL(callbackURL),
			)

			workerCtx, stopWorker := context.WithCancel(ctx)
			defer stopWorker()
			uc.StartPushWorker(workerCtx)

			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
