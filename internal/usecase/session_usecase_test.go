package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
	mock_interfaces "github.com/woliveira1728/os-system-frontend/internal/usecase/interfaces/mocks"
	"github.com/woliveira1728/os-system-frontend/pkg"
)

func TestSessionUseCase_Restore(t *testing.T) {
	t.Run("installs a stored session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewSessionUseCase(nil, store)

		store.EXPECT().Load().Return("tok", entities.User{ID: "u-1", Name: "Tech"}, true)

		uc.Restore()

		if !uc.Loaded() {
			t.Fatalf("expected loaded flag set")
		}
		user, ok := uc.Current()
		if !ok || user.ID != "u-1" {
			t.Fatalf("expected restored user, got %+v %v", user, ok)
		}
	})

	t.Run("absent or malformed durable state yields an empty session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewSessionUseCase(nil, store)

		store.EXPECT().Load().Return("", entities.User{}, false)
		store.EXPECT().Clear().Return(nil)

		uc.Restore()

		if !uc.Loaded() {
			t.Fatalf("expected loaded flag set even for empty session")
		}
		if _, ok := uc.Current(); ok {
			t.Fatalf("expected no session")
		}
	})

	t.Run("never fails when the clear itself fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewSessionUseCase(nil, store)

		store.EXPECT().Load().Return("", entities.User{}, false)
		store.EXPECT().Clear().Return(errors.New("disk"))

		uc.Restore()

		if _, ok := uc.Current(); ok {
			t.Fatalf("expected no session")
		}
	})
}

func TestSessionUseCase_Login(t *testing.T) {
	t.Run("stores token and identity on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAPIGateway(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewSessionUseCase(gateway, store)

		user := entities.User{ID: "u-1", Email: "tech@example.com", Role: entities.RoleTechnician}
		resp, _ := json.Marshal(map[string]any{"token": "tok-1", "user": user})

		gateway.EXPECT().Post(gomock.Any(), "/auth/login", loginRequest{Email: "tech@example.com", Password: "secret"}).Return(json.RawMessage(resp), nil)
		store.EXPECT().Save("tok-1", gomock.Any()).Return(nil)

		if err := uc.Login(context.Background(), "tech@example.com", "secret"); err != nil {
			t.Fatalf("login: %v", err)
		}
		got, ok := uc.Current()
		if !ok || got.ID != "u-1" {
			t.Fatalf("expected current user u-1, got %+v %v", got, ok)
		}
	})

	t.Run("propagates the server message on rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAPIGateway(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewSessionUseCase(gateway, store)

		derr := pkg.NewDomainErrorSimple("HTTP_401", "wrong password", http.StatusUnauthorized)
		gateway.EXPECT().Post(gomock.Any(), "/auth/login", gomock.Any()).Return(nil, derr)

		err := uc.Login(context.Background(), "tech@example.com", "bad")
		if !errors.Is(err, ErrAuthFailed) {
			t.Fatalf("expected ErrAuthFailed, got %v", err)
		}
		if _, ok := uc.Current(); ok {
			t.Fatalf("expected no session after a failed login")
		}
	})

	t.Run("rejects blank credentials locally", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil)
		if err := uc.Login(context.Background(), "  ", "x"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("incomplete login response is an auth failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAPIGateway(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewSessionUseCase(gateway, store)

		gateway.EXPECT().Post(gomock.Any(), "/auth/login", gomock.Any()).Return(json.RawMessage(`{"token":"tok"}`), nil)

		if err := uc.Login(context.Background(), "a@b.c", "x"); !errors.Is(err, ErrAuthFailed) {
			t.Fatalf("expected ErrAuthFailed, got %v", err)
		}
	})
}

func TestSessionUseCase_Register(t *testing.T) {
	t.Run("does not authenticate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAPIGateway(ctrl)
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewSessionUseCase(gateway, store)

		gateway.EXPECT().Post(gomock.Any(), "/auth/register", registerRequest{Name: "Tech", Email: "t@e.c", Password: "pw"}).Return(json.RawMessage(`{}`), nil)

		if err := uc.Register(context.Background(), "Tech", "t@e.c", "pw"); err != nil {
			t.Fatalf("register: %v", err)
		}
		if _, ok := uc.Current(); ok {
			t.Fatalf("register must not install a session")
		}
	})

	t.Run("rejects blank fields locally", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil)
		if err := uc.Register(context.Background(), "", "t@e.c", "pw"); !errors.Is(err, ErrInvalidRegisterData) {
			t.Fatalf("expected ErrInvalidRegisterData, got %v", err)
		}
	})
}

func TestSessionUseCase_Teardown(t *testing.T) {
	t.Run("logout clears memory and durable state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewSessionUseCase(nil, store)

		store.EXPECT().Load().Return("tok", entities.User{ID: "u-1"}, true)
		store.EXPECT().Clear().Return(nil)

		uc.Restore()
		uc.Logout()

		if _, ok := uc.Current(); ok {
			t.Fatalf("expected session cleared after logout")
		}
	})

	t.Run("unauthorized hook is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewSessionUseCase(nil, store)

		store.EXPECT().Clear().Return(nil).Times(2)

		uc.HandleUnauthorized()
		uc.HandleUnauthorized()

		if _, ok := uc.Current(); ok {
			t.Fatalf("expected empty session")
		}
	})
}
