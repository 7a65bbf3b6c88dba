package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/vehicle-catalog-api/internal/config"
	"github.com/vehicle-catalog-api/internal/database"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/observability"
	"github.com/vehicle-catalog-api/internal/repository"
	"github.com/vehicle-catalog-api/internal/service"
	"github.com/vehicle-catalog-api/pkg/logger"
)

// CLI entry for one-shot catalog maintenance, without the HTTP server:
//
//	sync -init                     initialize brands and models
//	sync -import vehicles.json     bulk-import a vehicle export file
//	sync -import vehicles.json -clear
func main() {
	runInit := flag.Bool("init", false, "run catalog initialization (brands and models)")
	importFile := flag.String("import", "", "path to a JSON vehicle export to import")
	clear := flag.Bool("clear", false, "wipe the vehicle table before importing")
	flag.Parse()

	log := logger.New()

	if !*runInit && *importFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	observability.Register()

	repos := repository.New(db)
	services := service.NewServices(repos, cfg, log)
	ctx := context.Background()

	if *runInit {
		if err := services.Catalog.RunInitialization(ctx); err != nil {
			log.Fatal().Err(err).Msg("Catalog initialization failed")
		}
		snap := services.Catalog.Progress()
		log.Info().
			Float64("overall", snap.Overall).
			Int("errors", len(snap.Errors)).
			Msg("Catalog initialization finished")
	}

	if *importFile != "" {
		raw, err := loadVehicleFile(*importFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *importFile).Msg("Failed to read vehicle file")
		}

		report, err := services.Import.ImportVehicles(ctx, raw, *clear)
		if err != nil {
			log.Fatal().Err(err).Msg("Vehicle import failed")
		}
		log.Info().
			Int("imported", report.Imported).
			Int("skipped", report.Skipped).
			Msg("Vehicle import finished")
	}
}

func loadVehicleFile(path string) ([]models.RawVehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []models.RawVehicle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
