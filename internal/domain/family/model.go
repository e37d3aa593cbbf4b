package family

import "time"

// Role of a member within a family vault.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Member is a pending or accepted invitation linking a user to a family
// vault, gated by a single-use token.
type Member struct {
	ID         int64
	VaultID    int64
	UserID     *int64
	Email      string
	Role       Role
	Token      string
	IsActive   bool
	AcceptedAt *time.Time
	CreatedAt  time.Time
}

// Invitation is the joined view returned by token verification: the member
// row enriched with the vault name and the inviter's display name.
type Invitation struct {
	VaultName   string
	InviterName string
	Role        Role
	MemberEmail string
	AcceptedAt  *time.Time
}
