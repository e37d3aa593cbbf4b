package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/client/config"
	"vaultkeeper/internal/domain/activity"
)

// App — клиентское приложение: HTTP-клиент плюс локальное хранилище сессии
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	storage    *SQLiteStorage
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	storage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации хранилища: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		storage:    storage,
	}

	// Восстанавливаем токен предыдущей сессии, если он есть
	token, _, err := storage.Session()
	if err != nil {
		log.Warn("Не удалось восстановить сессию", "error", err)
	} else if token != "" {
		httpCl.SetToken(token)
	}

	return app, nil
}

func (a *App) Close() error {
	return a.storage.Close()
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// IsAuthenticated сообщает, есть ли сохраненная сессия
func (a *App) IsAuthenticated() bool {
	token, _, err := a.storage.Session()
	return err == nil && token != ""
}

// Email возвращает email последнего входа
func (a *App) Email() string {
	_, email, _ := a.storage.Session()
	return email
}

func (a *App) Register(ctx context.Context, email, password string) error {
	return a.httpClient.Register(ctx, email, password)
}

// Login аутентифицируется на сервере и сохраняет токен локально
func (a *App) Login(ctx context.Context, email, password string) error {
	token, err := a.httpClient.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.storage.SaveSession(token, email); err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	return nil
}

// Logout сбрасывает сессию на сервере и локально. Локальный токен
// удаляется даже если сервер недоступен.
func (a *App) Logout(ctx context.Context) error {
	serverErr := a.httpClient.Logout(ctx)

	if err := a.storage.ClearSession(); err != nil {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}

	return serverErr
}

// ActivityList возвращает страницу журнала действий
func (a *App) ActivityList(ctx context.Context, filter ActivityFilter) (*activity.Page, error) {
	return a.httpClient.ActivityList(ctx, filter)
}

// VaultStatus возвращает состояние инициализации хранилища
func (a *App) VaultStatus(ctx context.Context) (*VaultStatus, error) {
	return a.httpClient.VaultStatus(ctx)
}

// VaultSetup завершает инициализацию хранилища
func (a *App) VaultSetup(ctx context.Context, recoveryKey string) error {
	return a.httpClient.VaultSetup(ctx, recoveryKey)
}
