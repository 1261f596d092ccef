package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	mock_interfaces "github.com/woliveira1728/os-system-frontend/internal/usecase/interfaces/mocks"
	"github.com/woliveira1728/os-system-frontend/pkg"
)

func TestClientBearerInjection(t *testing.T) {
	t.Run("adds the header when a token is held", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)

		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		store.EXPECT().Token().Return("tok-1", true)
		c := NewClient(srv.URL, store)

		if _, err := c.Get(context.Background(), "/orders"); err != nil {
			t.Fatalf("get: %v", err)
		}
		if gotAuth != "Bearer tok-1" {
			t.Fatalf("expected bearer header, got %q", gotAuth)
		}
	})

	t.Run("omits the header without a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)

		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		store.EXPECT().Token().Return("", false)
		c := NewClient(srv.URL, store)

		if _, err := c.Post(context.Background(), "/auth/login", map[string]string{"email": "a@b.c"}); err != nil {
			t.Fatalf("post: %v", err)
		}
		if gotAuth != "" {
			t.Fatalf("expected no auth header, got %q", gotAuth)
		}
	})
}

func TestClientUnauthorizedTeardown(t *testing.T) {
	newServer := func(status int, body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(body))
		}))
	}

	t.Run("401 clears the store and fires the hook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)

		srv := newServer(http.StatusUnauthorized, `{"message":"token expired"}`)
		defer srv.Close()

		store.EXPECT().Token().Return("stale", true)
		store.EXPECT().Clear().Return(nil)

		c := NewClient(srv.URL, store)
		hookFired := false
		c.SetUnauthorizedHook(func() { hookFired = true })

		_, err := c.Get(context.Background(), "/orders")
		derr, ok := pkg.AsDomainError(err)
		if !ok || derr.HTTPStatus != http.StatusUnauthorized {
			t.Fatalf("expected a 401 DomainError, got %v", err)
		}
		if derr.Message != "token expired" {
			t.Fatalf("expected the server message, got %q", derr.Message)
		}
		if !hookFired {
			t.Fatalf("expected the unauthorized hook to fire")
		}
	})

	t.Run("401 on the login path does not tear down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)

		srv := newServer(http.StatusUnauthorized, `{"message":"wrong password"}`)
		defer srv.Close()

		store.EXPECT().Token().Return("", false)
		// No Clear expectation: the login path is exempt.

		c := NewClient(srv.URL, store)
		c.SetUnauthorizedHook(func() { t.Fatalf("hook must not fire for the login path") })

		_, err := c.Post(context.Background(), "/auth/login", map[string]string{"email": "a@b.c", "password": "x"})
		if derr, ok := pkg.AsDomainError(err); !ok || derr.HTTPStatus != http.StatusUnauthorized {
			t.Fatalf("expected the 401 to surface to the caller, got %v", err)
		}
	})

	t.Run("other error statuses surface without teardown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)

		srv := newServer(http.StatusNotFound, `{"message":"Order not found"}`)
		defer srv.Close()

		store.EXPECT().Token().Return("tok", true)
		c := NewClient(srv.URL, store)

		_, err := c.Get(context.Background(), "/orders/missing")
		derr, ok := pkg.AsDomainError(err)
		if !ok || derr.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected a 404 DomainError, got %v", err)
		}
		if derr.Message != "Order not found" {
			t.Fatalf("unexpected message %q", derr.Message)
		}
	})

	t.Run("empty error body falls back to status text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)

		srv := newServer(http.StatusInternalServerError, ``)
		defer srv.Close()

		store.EXPECT().Token().Return("tok", true)
		c := NewClient(srv.URL, store)

		_, err := c.Get(context.Background(), "/orders")
		derr, ok := pkg.AsDomainError(err)
		if !ok || derr.Message != http.StatusText(http.StatusInternalServerError) {
			t.Fatalf("expected status-text fallback, got %v", err)
		}
	})
}

func TestClientTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockISessionStore(ctrl)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // transport failure: nothing is listening

	store.EXPECT().Token().Return("", false)
	c := NewClient(srv.URL, store)

	_, err := c.Get(context.Background(), "/orders")
	if err == nil {
		t.Fatalf("expected a transport error")
	}
	if _, ok := pkg.AsDomainError(err); ok {
		t.Fatalf("transport failures must not be DomainErrors: %v", err)
	}
}

func TestClientPostMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockISessionStore(ctrl)

	var gotOrderID, gotFilename string
	var gotFile []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotOrderID = r.FormValue("orderId")
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		gotFilename = header.Filename
		gotFile, _ = io.ReadAll(file)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store.EXPECT().Token().Return("tok", true)
	c := NewClient(srv.URL, store)

	fields := map[string]string{"orderId": "o-1"}
	_, err := c.PostMultipart(context.Background(), "/photos/o-1", fields, "file", "photo_1.jpg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("post multipart: %v", err)
	}
	if gotOrderID != "o-1" || gotFilename != "photo_1.jpg" || string(gotFile) != "jpeg-bytes" {
		t.Fatalf("unexpected upload: order=%q file=%q body=%q", gotOrderID, gotFilename, gotFile)
	}
}

func TestServerMessage(t *testing.T) {
	if got := serverMessage(json.RawMessage(`{"message":"nope"}`), 400); got != "nope" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := serverMessage([]byte("not json"), 502); got != http.StatusText(502) {
		t.Fatalf("unexpected fallback %q", got)
	}
}
