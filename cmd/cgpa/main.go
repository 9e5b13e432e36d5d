package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alexanderramin/cgpa/internal/cli"
	"github.com/alexanderramin/cgpa/internal/config"
	"github.com/alexanderramin/cgpa/internal/db"
	"github.com/alexanderramin/cgpa/internal/repository"
	"github.com/alexanderramin/cgpa/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	courseRepo := repository.NewSQLiteCourseRepo(database)
	stateRepo := repository.NewSQLiteAcademicStateRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	semesterRepo := repository.NewSQLiteSemesterRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	app := &cli.App{
		Calc:   service.NewCalculatorService(courseRepo, stateRepo, settingsRepo, uow, cfg.DefaultRows, observer),
		Goals:  service.NewGoalService(stateRepo, observer),
		WhatIf: service.NewWhatIfService(semesterRepo, stateRepo, uow, rng, observer),
		Export: service.NewExportService(courseRepo, stateRepo, observer),
		Import: service.NewImportService(uow, observer),
		DBPath: cfg.DBPath,
	}

	// Detect interactive terminal for wizards and the live view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
