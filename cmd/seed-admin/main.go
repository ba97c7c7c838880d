// Command seed-admin creates an admin account. Admin registration is not
// exposed over the API, so the first (and any further) admin is provisioned
// with this tool.
//
// Usage: seed-admin -name "Admin" -email admin@example.com -password secret
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/rajdhanitech/tuition-backend/internal/adapter/postgres"
	accountrepo "github.com/rajdhanitech/tuition-backend/internal/adapter/postgres/account"
	"github.com/rajdhanitech/tuition-backend/internal/app"
	"github.com/rajdhanitech/tuition-backend/internal/config"
	"github.com/rajdhanitech/tuition-backend/internal/domain"
	authsvc "github.com/rajdhanitech/tuition-backend/internal/service/auth"
)

func main() {
	_ = godotenv.Load()

	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		log.Fatal("all of -name, -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), cfg.Auth.PasswordHashCost)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Store the address the way register/login look it up, so the seeded
	// admin can actually log in.
	now := time.Now()
	account, err := accountrepo.New(pool).Create(ctx, &domain.Account{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(*name),
		Email:        authsvc.NormalizeEmail(*email),
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		logger.Error("create admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("admin account created",
		slog.String("account_id", account.ID.String()),
		slog.String("email", account.Email),
	)
}
