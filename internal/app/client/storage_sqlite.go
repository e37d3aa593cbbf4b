package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStorage хранит локальное состояние клиента: токен сессии и
// кэшированный email последнего входа.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	// Одна строка на установку клиента
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS auth (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			updated_at DATETIME NOT NULL
		);
	`)

	return err
}

// SaveSession сохраняет токен и email после успешного входа
func (s *SQLiteStorage) SaveSession(token, email string) error {
	_, err := s.db.Exec(`
		INSERT INTO auth (id, token, email, updated_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token,
			email = excluded.email, updated_at = excluded.updated_at
	`, token, email, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	return nil
}

// Session возвращает сохраненные токен и email; пустые строки — входа не было
func (s *SQLiteStorage) Session() (token, email string, err error) {
	err = s.db.QueryRow("SELECT token, email FROM auth WHERE id = 1").Scan(&token, &email)
	if err == sql.ErrNoRows {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("ошибка чтения токена: %w", err)
	}

	return token, email, nil
}

// ClearSession удаляет сохраненный токен
func (s *SQLiteStorage) ClearSession() error {
	_, err := s.db.Exec("DELETE FROM auth WHERE id = 1")
	if err != nil {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
