//хранение зашифрованных хранилищ (личных и семейных);
//журнал действий пользователя с keyset-пагинацией;
//проверка приглашений в семейное хранилище по токену;
//сессии через Bearer-токен или куку.

//POST /api/auth/register            # Регистрация (публичный)
//POST /api/auth/login               # Логин, ставит куку (публичный)
//POST /api/auth/logout              # Сброс куки (публичный)
//GET  /api/activity                 # Журнал действий (auth)
//GET  /api/vault/setup              # Статус инициализации хранилища (auth)
//POST /api/vault/setup              # Завершить инициализацию (auth)
//POST /api/family/{vaultId}/invite  # Приглашение (stub, auth)
//GET  /api/family/{vaultId}/verify  # Проверка токена приглашения (публичный)

package api

import (
	activityAPI "vaultkeeper/internal/app/server/api/http/activity"
	familyAPI "vaultkeeper/internal/app/server/api/http/family"
	healthAPI "vaultkeeper/internal/app/server/api/http/health"
	"vaultkeeper/internal/app/server/api/http/middleware"
	"vaultkeeper/internal/app/server/api/http/middleware/auth"
	"vaultkeeper/internal/app/server/api/http/middleware/logger"
	userAPI "vaultkeeper/internal/app/server/api/http/user"
	vaultAPI "vaultkeeper/internal/app/server/api/http/vault"
	"vaultkeeper/internal/app/server/config"
	"vaultkeeper/internal/domain/activity"
	"vaultkeeper/internal/domain/family"
	"vaultkeeper/internal/domain/session"
	"vaultkeeper/internal/domain/user"
	"vaultkeeper/internal/domain/vault"
	"vaultkeeper/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *healthAPI.Handler
	User     *userAPI.Handler
	Activity *activityAPI.Handler
	Vault    *vaultAPI.Handler
	Family   *familyAPI.Handler
}

// New создает *chi.Mux со ВСЕМИ операциями через huma.Register
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Vaultkeeper API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Activity.SetupRoutes(API)
	h.Vault.SetupRoutes(API)
	h.Family.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	pool := storage.Pool()

	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	activityRepo := postgres.NewActivityRepository(pool, log)
	activityService := activity.NewService(activityRepo, log)

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, user.NewCredentialsValidator(), activityService, log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, cfg.SecureCookies(), log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	activityHandler := activityAPI.NewHandler(activityService, log, middlewares.GetAllAndClear())

	vaultRepo := postgres.NewVaultRepository(pool, log)
	vaultService := vault.NewService(vaultRepo, activityService, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	vaultHandler := vaultAPI.NewHandler(vaultService, log, middlewares.GetAllAndClear())

	familyRepo := postgres.NewFamilyRepository(pool, log)
	familyService := family.NewService(familyRepo, log)
	middlewares.Add(loggerMW.Middleware())
	familyPublicMWs := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	familyHandler := familyAPI.NewHandler(familyService, log, familyPublicMWs, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		User:     userHandler,
		Activity: activityHandler,
		Vault:    vaultHandler,
		Family:   familyHandler,
	}
}
