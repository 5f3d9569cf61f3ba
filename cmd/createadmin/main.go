package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Kavitha8494/ca/internal/config"
	"github.com/Kavitha8494/ca/internal/database"
	"github.com/Kavitha8494/ca/internal/database/migration"
	"github.com/Kavitha8494/ca/internal/repository/postgres"
	"github.com/Kavitha8494/ca/internal/service"
)

// createadmin creates a back-office account or resets its password.
//
//	createadmin -username admin -password <secret>
//
// The password can also be supplied via ADMIN_PASSWORD to keep it out of
// shell history.
func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (or set ADMIN_PASSWORD)")
	flag.Parse()

	pw := *password
	if pw == "" {
		pw = os.Getenv("ADMIN_PASSWORD")
	}
	if pw == "" {
		log.Fatal("a password is required: pass -password or set ADMIN_PASSWORD")
	}

	cfg := config.Load()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migration.EnsureMigrated(ctx, db, time.Local, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	authSvc := service.NewAuthService(postgres.NewAdminPostgres(db), cfg.Auth)
	if err := authSvc.EnsureAdmin(ctx, *username, pw); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin %q is ready", *username)
}
