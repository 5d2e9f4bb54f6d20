package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"campuschain_backend/internal/app/di"
	"campuschain_backend/internal/app/router"
	adminhandler "campuschain_backend/internal/feature/admin/transport/handler"
	adminusecase "campuschain_backend/internal/feature/admin/usecase"
	authadapters "campuschain_backend/internal/feature/auth/adapters"
	authentity "campuschain_backend/internal/feature/auth/domain/entity"
	authhandler "campuschain_backend/internal/feature/auth/transport/handler"
	authusecase "campuschain_backend/internal/feature/auth/usecase"
	eventhandler "campuschain_backend/internal/feature/event/transport/handler"
	eventusecase "campuschain_backend/internal/feature/event/usecase"
	profileadapters "campuschain_backend/internal/feature/profile/adapters"
	profilehandler "campuschain_backend/internal/feature/profile/transport/handler"
	profileusecase "campuschain_backend/internal/feature/profile/usecase"
	synchandler "campuschain_backend/internal/feature/sync/transport/handler"
	syncusecase "campuschain_backend/internal/feature/sync/usecase"
	"campuschain_backend/internal/platform/config"
	platformdb "campuschain_backend/internal/platform/db"
	jwtmw "campuschain_backend/internal/platform/jwt"
	platformredis "campuschain_backend/internal/platform/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// One connection per logical store. Startup refuses to serve if any
	// store stays unreachable past the connect timeout.
	loginDB, err := platformdb.Open(cfg.LoginDBDSN, "loginDB")
	if err != nil {
		log.Fatal(err)
	}
	studentDB, err := platformdb.Open(cfg.StudentDBDSN, "studentDB")
	if err != nil {
		log.Fatal(err)
	}
	alumniDB, err := platformdb.Open(cfg.AlumniDBDSN, "alumniDB")
	if err != nil {
		log.Fatal(err)
	}

	if cfg.RunMigrations {
		if err := platformdb.MigrateLogin(loginDB); err != nil {
			log.Fatalf("failed to migrate loginDB: %v", err)
		}
		if err := platformdb.MigrateProfiles(studentDB); err != nil {
			log.Fatalf("failed to migrate studentDB: %v", err)
		}
		if err := platformdb.MigrateProfiles(alumniDB); err != nil {
			log.Fatalf("failed to migrate alumniDB: %v", err)
		}
		if err := platformdb.MigrateEvents(studentDB); err != nil {
			log.Fatalf("failed to migrate events: %v", err)
		}
	}

	// Redis is optional; without it the event cache is bypassed.
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := platformredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repositories
	credRepo := authadapters.NewCredentialPostgres(loginDB)
	studentRepo := profileadapters.NewProfilePostgres(studentDB)
	alumniRepo := profileadapters.NewProfilePostgres(alumniDB)
	eventRepo := di.NewEventRepository(rdb, studentDB)

	// Usecases
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, jwtmw.TokenExpiry)
	authUC := authusecase.NewAuthUsecase(credRepo, map[authentity.Role]authusecase.ProfileCreator{
		authentity.RoleStudent: studentRepo,
		authentity.RoleAlumni:  alumniRepo,
	}, tokens)
	studentUC := profileusecase.NewProfileUsecase(studentRepo, credRepo, authentity.RoleStudent)
	alumniUC := profileusecase.NewProfileUsecase(alumniRepo, nil, authentity.RoleAlumni)
	syncUC := syncusecase.NewSyncUsecase(credRepo, map[authentity.Role]syncusecase.ProfileRepository{
		authentity.RoleStudent: studentRepo,
		authentity.RoleAlumni:  alumniRepo,
	})
	eventUC := eventusecase.NewEventUsecase(eventRepo)
	adminUC := adminusecase.NewAdminUsecase(studentRepo, alumniRepo)

	// Handlers
	handlers := router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC),
		Students: profilehandler.NewProfileHandler(studentUC, authentity.RoleStudent),
		Alumni:   profilehandler.NewProfileHandler(alumniUC, authentity.RoleAlumni),
		Sync:     synchandler.NewSyncHandler(syncUC),
		Events:   eventhandler.NewEventHandler(eventUC),
		Admin:    adminhandler.NewAdminHandler(adminUC),
	}

	r := router.NewRouter(cfg.JWTSecret, handlers)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
