package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/config"
	"github.com/diegoclair/duty-roster-bot/internal/database"
	"github.com/diegoclair/duty-roster-bot/internal/domain/contract"
	"github.com/diegoclair/duty-roster-bot/internal/domain/service"
	"github.com/diegoclair/duty-roster-bot/internal/handlers"
	"github.com/diegoclair/duty-roster-bot/internal/logger"
	"github.com/diegoclair/duty-roster-bot/internal/roster"
	"github.com/diegoclair/duty-roster-bot/internal/source"
	"github.com/diegoclair/duty-roster-bot/migrator/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()

	log := logger.New(cfg.Env, cfg.LogLevel)
	if envErr != nil {
		log.Warn(".env file not found")
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	rosterFile, err := config.ReadRoster(cfg.RosterConfigPath)
	if err != nil {
		log.Fatalf("Failed to read roster config: %v", err)
	}
	engineCfg, err := rosterFile.Engine()
	if err != nil {
		log.Fatalf("Invalid roster config: %v", err)
	}

	var dm contract.DataManager
	if cfg.RosterSource == source.KindSQLite {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		log.Info("Running migrations...")
		if err := sqlite.Migrate(db.DB()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Info("Migrations completed successfully")

		dm = database.NewInstance(db)
	}

	slackClient := slack.New(cfg.SlackBotToken)

	services := service.NewInstance(
		source.New(cfg.RosterSource, cfg.FetchTimeout, dm),
		service.DutyConfig{
			Parser:         roster.NewParser(engineCfg, log),
			Year:           rosterFile.Year,
			Location:       loc,
			SlackDirectory: rosterFile.SlackDirectory(),
		},
		dm,
		slackClient,
		cfg.AnnounceChannel,
		log,
	)

	if services.Announcer != nil {
		services.Announcer.Start()
		defer services.Announcer.Stop()
	}

	handler := handlers.New(services.Duty, cfg.SlackSigningSecret, cfg.ScheduleDays, log)

	router := chi.NewRouter()
	handlers.SetupRoutes(router, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithField("source", cfg.RosterSource).Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting")
}
