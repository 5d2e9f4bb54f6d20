// Command backfill creates missing student profiles for every student
// credential in the login database. It is the bulk counterpart of the
// sync-profile endpoint, meant to be run once after an outage or migration.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	authadapters "campuschain_backend/internal/feature/auth/adapters"
	authentity "campuschain_backend/internal/feature/auth/domain/entity"
	profileadapters "campuschain_backend/internal/feature/profile/adapters"
	syncusecase "campuschain_backend/internal/feature/sync/usecase"
	"campuschain_backend/internal/platform/config"
	platformdb "campuschain_backend/internal/platform/db"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	loginDB, err := platformdb.Open(cfg.LoginDBDSN, "loginDB")
	if err != nil {
		log.Fatal(err)
	}
	studentDB, err := platformdb.Open(cfg.StudentDBDSN, "studentDB")
	if err != nil {
		log.Fatal(err)
	}

	credRepo := authadapters.NewCredentialPostgres(loginDB)
	studentRepo := profileadapters.NewProfilePostgres(studentDB)
	syncUC := syncusecase.NewSyncUsecase(credRepo, map[authentity.Role]syncusecase.ProfileRepository{
		authentity.RoleStudent: studentRepo,
	})

	ctx := context.Background()

	creds, err := credRepo.FindAllByRole(ctx, authentity.RoleStudent)
	if err != nil {
		log.Fatalf("failed to list student credentials: %v", err)
	}
	slog.Info("starting profile backfill", "credentials", len(creds))

	var created, skipped, failed int
	for _, cred := range creds {
		result := syncUC.SyncProfile(ctx, cred.Email, authentity.RoleStudent)
		switch result.Code {
		case syncusecase.CodeProfileCreated:
			created++
			slog.Info("profile created", "email", cred.Email)
		case syncusecase.CodeProfileExists:
			skipped++
		default:
			failed++
			slog.Error("sync failed", "email", cred.Email, "code", result.Code, "error", result.Err)
		}
	}

	slog.Info("backfill complete", "created", created, "skipped", skipped, "failed", failed)
	if failed > 0 {
		log.Fatalf("backfill finished with %d failures", failed)
	}
}
