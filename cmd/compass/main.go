package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/compass/internal/advisor"
	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/cli"
	"github.com/alexanderramin/compass/internal/config"
	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/diagnosis"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if cfg.DBPath == "" {
		return fmt.Errorf("no database path: set COMPASS_DB")
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteWizardSessionRepo(database)
	recordRepo := repository.NewSQLiteDiagnosisRecordRepo(database)
	profileRepo := repository.NewSQLiteUserProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	cat := catalog.Default()
	engine := diagnosis.NewEngine(cat)

	rnd := advisor.SystemRand()
	if cfg.HasAdvisorSeed {
		rnd = advisor.SeededRand(cfg.AdvisorSeed)
	}
	adv, err := advisor.New(cat, rnd)
	if err != nil {
		return fmt.Errorf("loading advisor: %w", err)
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	profiles := service.NewProfileService(profileRepo, cfg.Plan, observers...)
	app := &cli.App{
		Catalog:  service.NewCatalogService(cat, profiles),
		Diagnose: service.NewDiagnoseService(engine, cat, profiles, recordRepo, observers...),
		History:  service.NewHistoryService(recordRepo, cat, profiles, observers...),
		Advisor:  service.NewAdvisorService(adv, cat, profiles, cfg.Industry, observers...),
		Wizard:   service.NewWizardService(sessionRepo, cat, engine, profiles, uow, observers...),
		Profile:  profiles,

		HTTPAddr: cfg.HTTPAddr,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
