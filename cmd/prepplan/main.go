package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/mcalloway/prepplan/internal/cli"
	"github.com/mcalloway/prepplan/internal/db"
	"github.com/mcalloway/prepplan/internal/repository"
	"github.com/mcalloway/prepplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.prepplan/prepplan.db
	dbPath := os.Getenv("PREPPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".prepplan", "prepplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	examRepo := repository.NewSQLiteExamRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Exams:    service.NewExamService(examRepo, uow),
		Progress: service.NewProgressService(progressRepo, examRepo),
		Plans:    service.NewPlanService(examRepo, progressRepo, planRepo, uow),
		Pace:     service.NewPaceService(examRepo, progressRepo, planRepo),
		Advice:   service.NewAdviceService(examRepo, progressRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
