// Command seeder bootstraps a fresh tool room database. It creates the
// initial super admin account and, optionally, a set of sample tools.
// It is idempotent: existing records are left untouched.
//
// Flags:
//
//	--admin-name      name of the super admin account (default: admin)
//	--admin-password  password for the super admin (required on first run)
//	--sample-tools    also create a handful of demo tools
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/makerclub/toolroom/internal/adapter/postgres"
	toolrepo "github.com/makerclub/toolroom/internal/adapter/postgres/tool"
	userrepo "github.com/makerclub/toolroom/internal/adapter/postgres/user"
	"github.com/makerclub/toolroom/internal/app"
	"github.com/makerclub/toolroom/internal/config"
	"github.com/makerclub/toolroom/internal/domain"
)

var sampleTools = []string{
	"Cordless drill",
	"Soldering station",
	"Oscilloscope",
	"Heat gun",
}

func main() {
	adminName := flag.String("admin-name", "admin", "name of the super admin account")
	adminPassword := flag.String("admin-password", "", "password for the super admin")
	seedTools := flag.Bool("sample-tools", false, "also create demo tools")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tools := toolrepo.New(pool)

	if err := seedAdmin(ctx, logger, users, *adminName, *adminPassword, cfg.Auth.BcryptCost); err != nil {
		logger.Error("seed admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *seedTools {
		if err := seedSampleTools(ctx, logger, tools); err != nil {
			logger.Error("seed tools", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("seeding completed")
}

func seedAdmin(ctx context.Context, logger *slog.Logger, users *userrepo.Repo, name, password string, bcryptCost int) error {
	if _, err := users.GetByName(ctx, name); err == nil {
		logger.Info("super admin already exists", slog.String("name", name))
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if password == "" {
		return errors.New("--admin-password is required to create the super admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.New(),
		Name:         name,
		PasswordHash: string(hash),
		Role:         domain.RoleSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("super admin created", slog.String("name", name))
	return nil
}

func seedSampleTools(ctx context.Context, logger *slog.Logger, tools *toolrepo.Repo) error {
	for _, name := range sampleTools {
		now := time.Now().UTC()
		t := &domain.Tool{
			ID:        uuid.New(),
			Name:      name,
			Status:    domain.ToolStatusAvailable,
			CreatedAt: now,
			UpdatedAt: now,
		}

		_, err := tools.Create(ctx, t)
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			logger.Info("tool already exists", slog.String("name", name))
		case err != nil:
			return err
		default:
			logger.Info("tool created", slog.String("name", name))
		}
	}
	return nil
}
