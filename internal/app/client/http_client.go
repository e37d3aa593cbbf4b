package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/client/config"
	"vaultkeeper/internal/domain/activity"
	"vaultkeeper/internal/domain/user"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	// Определяем протокол
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "Vaultkeeper-Client/1.0",
	}, nil
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	return nil
}

func (h *httpClient) Register(ctx context.Context, email, password string) error {
	req := user.BaseRequest{
		Email:    email,
		Password: password,
	}

	resp, err := h.doRequest(ctx, "POST", "/api/auth/register", req)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	req := user.BaseRequest{
		Email:    email,
		Password: password,
	}

	resp, err := h.doRequest(ctx, "POST", "/api/auth/login", req)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}

	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.SetToken(loginResp.Token)
	return loginResp.Token, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, "POST", "/api/auth/logout", nil)
	if err != nil {
		return err
	}

	h.token = ""
	return h.parseResponse(resp, nil)
}

// ActivityList запрашивает страницу журнала действий
func (h *httpClient) ActivityList(ctx context.Context, filter ActivityFilter) (*activity.Page, error) {
	query := url.Values{}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Cursor != "" {
		query.Set("cursor", filter.Cursor)
	}
	if filter.VaultType != "" {
		query.Set("vaultType", filter.VaultType)
	}
	if filter.Action != "" {
		query.Set("action", filter.Action)
	}
	if filter.From != "" {
		query.Set("from", filter.From)
	}
	if filter.To != "" {
		query.Set("to", filter.To)
	}

	path := "/api/activity"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	resp, err := h.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var page activity.Page
	if err := h.parseResponse(resp, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// VaultStatus запрашивает состояние инициализации хранилища
func (h *httpClient) VaultStatus(ctx context.Context) (*VaultStatus, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/vault/setup", nil)
	if err != nil {
		return nil, err
	}

	var status VaultStatus
	if err := h.parseResponse(resp, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// VaultSetup помечает хранилище как инициализированное
func (h *httpClient) VaultSetup(ctx context.Context, recoveryKey string) error {
	req := struct {
		RecoveryKeyEncryptedVaultKey string `json:"recoveryKeyEncryptedVaultKey,omitempty"`
	}{
		RecoveryKeyEncryptedVaultKey: recoveryKey,
	}

	resp, err := h.doRequest(ctx, "POST", "/api/vault/setup", req)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Detail != "" {
				return fmt.Errorf("ошибка сервера: %s", errResp.Detail)
			}
			if errResp.Error != "" {
				return fmt.Errorf("ошибка сервера: %s", errResp.Error)
			}
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
