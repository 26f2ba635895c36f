package seed

import (
	"context"
	"errors"

	appModels "github.com/emre/grievancehub/internal/app/models"
	appRepos "github.com/emre/grievancehub/internal/app/repositories"
	"github.com/emre/grievancehub/internal/db"
	"github.com/emre/grievancehub/internal/pkg/apperrors"
	pkgAuth "github.com/emre/grievancehub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// defaultAdminEmail is the bootstrap account; change its password after
// first login.
const (
	defaultAdminEmail    = "admin@school.edu.tr"
	defaultAdminPassword = "change-me-now"
)

// CreateDefaultData provisions the bootstrap admin account and a starter
// roster of students if they don't exist. Students are otherwise managed out
// of band; the API exposes no student CRUD.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(database)

	lgr.Info().Msg("Checking/Creating default data (admin account, roster)...")
	var finalErr error

	if err := seedAdmin(ctx, repos.UserRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedRoster(ctx, repos.StudentRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.ExistsByEmail(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking admin account")
		return err
	}
	if exists {
		return nil
	}

	hash, err := pkgAuth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		FullName:     "Default Admin",
		RoleType:     appModels.RoleAdmin,
	}

	err = userRepo.Create(ctx, admin)
	if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}

func seedRoster(ctx context.Context, studentRepo *appRepos.StudentRepository, lgr zerolog.Logger) error {
	roster := []appModels.Student{
		{StudentCode: "STU-2025-001", Name: "Alice Yilmaz", Class: "8", Section: "A"},
		{StudentCode: "STU-2025-002", Name: "Bora Kaya", Class: "8", Section: "A"},
		{StudentCode: "STU-2025-003", Name: "Cem Aksoy", Class: "8", Section: "B"},
		{StudentCode: "STU-2025-004", Name: "Derya Polat", Class: "7", Section: "A"},
	}

	var finalErr error
	for i := range roster {
		exists, err := studentRepo.ExistsByCode(ctx, roster[i].StudentCode)
		if err != nil {
			lgr.Error().Err(err).Str("code", roster[i].StudentCode).Msg("Error checking roster entry")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		if err := studentRepo.Create(ctx, &roster[i]); err != nil {
			lgr.Error().Err(err).Str("code", roster[i].StudentCode).Msg("Error creating roster entry")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
