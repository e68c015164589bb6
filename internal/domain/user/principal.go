package user

import (
	"github.com/google/uuid"
)

// Principal is the already-authenticated caller as resolved by the identity
// provider. The wheel endpoints additionally require a verified phone number,
// which doubles as the per-day entitlement key.
type Principal struct {
	ID    uuid.UUID
	Phone string
	Role  Role
}

func (p Principal) HasPhone() bool {
	return p.Phone != ""
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
