package client

import "time"

// VaultStatus — состояние инициализации хранилища на сервере
type VaultStatus struct {
	VaultSetupCompleted   bool       `json:"vaultSetupCompleted"`
	VaultSetupCompletedAt *time.Time `json:"vaultSetupCompletedAt"`
}

// ActivityFilter — параметры запроса журнала действий
type ActivityFilter struct {
	Limit     int
	Cursor    string
	VaultType string
	Action    string
	From      string
	To        string
}
