package interfaces

import (
	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
)

// ISessionStore abstracts the durable client-side session storage: exactly
// two entries, the opaque bearer token and the serialized identity, written
// and cleared together.
//
// Load never fails: malformed or half-present durable state reads as absent
// (ok == false); callers are expected to Clear in that case.
type ISessionStore interface {
	Save(token string, user entities.User) error
	Load() (token string, user entities.User, ok bool)
	Token() (string, bool)
	Clear() error
}
