package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/paislab/pais-api/internal/config"
	"github.com/paislab/pais-api/internal/errs"
	"github.com/paislab/pais-api/internal/store"
)

// This tool copies the file-backed favorites tree into the Redis or MySQL
// backend, so an existing installation can switch STORE_TYPE without losing
// its favorites.
//
// Usage: go run cmd/migrate-favorites/main.go -target redis
func main() {
	target := flag.String("target", "redis", "destination backend: redis or mysql")
	flag.Parse()

	fmt.Println("🔄 Migrating favorites from the file store...")

	// Load configuration
	appConfig := config.Load()

	source := store.NewFileStore(appConfig.FavoritesDir)
	defer source.Close()

	destination := openTarget(*target, appConfig)
	defer destination.Close()

	migrated, skipped := migrate(source, destination)

	fmt.Printf("✅ Migration finished: %d favorites copied, %d already present\n", migrated, skipped)
	fmt.Printf("\n💡 You can now start the server with STORE_TYPE=%s\n", *target)
}

// openTarget connects to the destination backend
func openTarget(target string, appConfig *config.Config) store.Store {
	switch target {
	case "redis":
		fmt.Printf("📡 Connecting to Redis at %s...\n", appConfig.RedisAddr)
		destination, err := store.NewRedisStore(appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		return destination

	case "mysql":
		fmt.Println("📡 Connecting to MySQL...")
		destination, err := store.NewMySQLStore(appConfig.MySQLDSN)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		return destination

	default:
		log.Fatalf("Unknown target %q (supported: redis, mysql)", target)
		return nil
	}
}

// migrate copies every favorite from the file tree into the destination.
// Conflicts (already migrated) are counted, any other failure aborts.
func migrate(source *store.FileStore, destination store.Store) (migrated, skipped int) {
	grouped, err := source.ListGroupedByRegion()
	if err != nil {
		log.Fatalf("Failed to read file store: %v", err)
	}

	for region, names := range grouped {
		for _, name := range names {
			country, err := source.Get(region, name)
			if err != nil {
				log.Fatalf("Failed to read favorite %s/%s: %v", region, name, err)
			}

			if _, err := destination.Add(country); err != nil {
				if errs.IsStatus(err, http.StatusConflict) {
					skipped++
					continue
				}
				log.Fatalf("Failed to store favorite %s: %v", name, err)
			}
			migrated++
			fmt.Printf("  • %s (%s)\n", country.Name, country.Region)
		}
	}
	return migrated, skipped
}
