package activity

import "time"

// VaultType tags an entry with the scope the action was performed in.
type VaultType string

const (
	VaultTypeAccount  VaultType = "account"
	VaultTypePersonal VaultType = "personal_vault"
	VaultTypeFamily   VaultType = "family_vault"
)

// Entry is one recorded user action. Entries are immutable once written.
type Entry struct {
	ID        int64     `json:"id,string"`
	UserID    int64     `json:"-"`
	VaultType VaultType `json:"vaultType"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
}

// Filter holds the optional predicates for a feed query. Zero values mean
// "no constraint"; predicates are combined with AND.
type Filter struct {
	UserID    int64
	VaultType VaultType
	Action    string
	From      *time.Time
	To        *time.Time
}

// Page is one page of the activity feed. NextCursor is nil on the last page.
type Page struct {
	Logs       []Entry `json:"logs"`
	NextCursor *string `json:"nextCursor"`
}
