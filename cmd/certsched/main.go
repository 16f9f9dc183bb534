package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/danharves/certsched/internal/cli"
	"github.com/danharves/certsched/internal/db"
	"github.com/danharves/certsched/internal/repository"
	"github.com/danharves/certsched/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.certsched/certsched.db
	dbPath := os.Getenv("CERTSCHED_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".certsched", "certsched.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	providerRepo := repository.NewSQLiteProviderRepo(database)
	availabilityRepo := repository.NewSQLiteAvailabilityRepo(database)
	profileRepo := repository.NewSQLiteLearningProfileRepo(database)
	certificateRepo := repository.NewSQLiteCertificateRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	arrangementRepo := repository.NewSQLiteWorkArrangementRepo(database)

	// Use-case telemetry goes to stderr only on interactive terminals; piped
	// output stays clean.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("CERTSCHED_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Recommend: service.NewRecommendService(
			providerRepo, availabilityRepo, profileRepo,
			certificateRepo, sessionRepo, arrangementRepo, observer),
		Grouping: service.NewGroupingService(
			certificateRepo, sessionRepo, service.StandardPriorityScorer{}, observer),
		Import: service.NewImportService(
			providerRepo, availabilityRepo, profileRepo,
			certificateRepo, sessionRepo, arrangementRepo, observer),
		Providers: providerRepo,
		Sessions:  sessionRepo,
	}

	return cli.NewRootCmd(app).Execute()
}
