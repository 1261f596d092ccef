package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
	"github.com/woliveira1728/os-system-frontend/internal/usecase/interfaces"
	"github.com/woliveira1728/os-system-frontend/pkg"
)

var (
	ErrAuthFailed          = errors.New("authentication failed")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRegisterData = errors.New("invalid registration data")
)

// ISessionUseCase holds the authenticated identity and owns every write to
// the durable token/identity storage (the gateway's 401 teardown being the
// one sanctioned exception).

type ISessionUseCase interface {
	Restore()
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	Logout()
	Current() (entities.User, bool)
	Loaded() bool
}

type SessionUseCase struct {
	gateway interfaces.IAPIGateway
	store   interfaces.ISessionStore

	mu     sync.RWMutex
	user   *entities.User
	loaded bool
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(gateway interfaces.IAPIGateway, store interfaces.ISessionStore) *SessionUseCase {
	return &SessionUseCase{gateway: gateway, store: store}
}

// Restore installs the durably stored session, if any, without revalidating
// it against the server. Malformed or half-present durable state is cleared
// and read as absent. Restore never fails; afterwards Loaded reports true and
// authorization decisions may be made.
func (u *SessionUseCase) Restore() {
	token, user, ok := u.store.Load()
	u.mu.Lock()
	defer u.mu.Unlock()
	if !ok {
		if err := u.store.Clear(); err != nil {
			log.Printf("[session][usecase] restore clear failed: %v", err)
		}
		u.user = nil
	} else {
		u.user = &user
		log.Printf("[session][usecase] restored session user_id=%s token_len=%d", user.ID, len(token))
	}
	u.loaded = true
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  entities.User `json:"user"`
}

func (u *SessionUseCase) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrInvalidCredentials
	}

	raw, err := u.gateway.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		if derr, ok := pkg.AsDomainError(err); ok {
			log.Printf("[session][usecase] login rejected status=%d", derr.HTTPStatus)
			return fmt.Errorf("%w: %s", ErrAuthFailed, derr.Message)
		}
		return err
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if resp.Token == "" || resp.User.ID == "" {
		return fmt.Errorf("%w: incomplete login response", ErrAuthFailed)
	}

	if err := u.store.Save(resp.Token, resp.User); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	u.mu.Lock()
	u.user = &resp.User
	u.mu.Unlock()
	log.Printf("[session][usecase] login success user_id=%s role=%s", resp.User.ID, resp.User.Role)
	return nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. It does not authenticate; the caller routes
// to login afterwards.
func (u *SessionUseCase) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return ErrInvalidRegisterData
	}

	_, err := u.gateway.Post(ctx, "/auth/register", registerRequest{Name: name, Email: email, Password: password})
	if err != nil {
		if derr, ok := pkg.AsDomainError(err); ok {
			return fmt.Errorf("%w: %s", ErrAuthFailed, derr.Message)
		}
		return err
	}
	log.Printf("[session][usecase] register success email=%s", email)
	return nil
}

// Logout clears the in-memory and durable session. It always succeeds.
func (u *SessionUseCase) Logout() {
	u.clearSession()
	log.Printf("[session][usecase] logout")
}

// HandleUnauthorized is the gateway's 401 hook: same teardown as Logout
// without the user-action semantics. Idempotent.
func (u *SessionUseCase) HandleUnauthorized() {
	u.clearSession()
	log.Printf("[session][usecase] session expired, cleared")
}

func (u *SessionUseCase) clearSession() {
	if err := u.store.Clear(); err != nil {
		log.Printf("[session][usecase] clear failed: %v", err)
	}
	u.mu.Lock()
	u.user = nil
	u.mu.Unlock()
}

func (u *SessionUseCase) Current() (entities.User, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.user == nil {
		return entities.User{}, false
	}
	return *u.user, true
}

// Loaded reports whether Restore has run. Consumers must not make
// authorization decisions before it returns true.
func (u *SessionUseCase) Loaded() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.loaded
}
