package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/moshiurrahmandeap11/server-news-portal/config"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/settings"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/upload"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/user"
	"github.com/moshiurrahmandeap11/server-news-portal/pkg/database"
)

const usage = `
News Portal - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Run schema migrations
  status      Show database connection status
  seed        Seed the database with the admin user
  reset       Drop all tables and re-run migrations (DANGEROUS)

Flags:
  -admin-email string  Admin email for seeding (default "admin@news-portal.local")
  -admin-pass string   Admin password for seeding (default "Admin@123!")

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed
  go run cmd/migrate/main.go reset
`

func main() {
	adminEmail := flag.String("admin-email", "admin@news-portal.local", "Admin email for seeding")
	adminPass := flag.String("admin-pass", "Admin@123!", "Admin password for seeding")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	database.Connect(cfg)

	switch flag.Arg(0) {
	case "up":
		if err := database.Migrate(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations applied")
	case "status":
		if err := database.HealthCheck(); err != nil {
			log.Fatalf("Database unreachable: %v", err)
		}
		log.Println("Database connection OK")
	case "seed":
		if err := database.Migrate(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		seedCfg := database.DefaultSeedConfig()
		seedCfg.AdminEmail = *adminEmail
		seedCfg.AdminPassword = *adminPass
		if _, err := database.Seed(seedCfg); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	case "reset":
		migrator := database.DB.Migrator()
		for _, table := range []interface{}{
			&upload.UploadRecord{},
			&settings.BasicSettings{},
			&user.User{},
		} {
			if migrator.HasTable(table) {
				if err := migrator.DropTable(table); err != nil {
					log.Fatalf("Failed to drop table: %v", err)
				}
			}
		}
		if err := database.Migrate(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database reset complete")
	default:
		flag.Usage()
		os.Exit(1)
	}
}
