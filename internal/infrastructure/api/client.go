package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"

	"github.com/woliveira1728/os-system-frontend/internal/usecase/interfaces"
	"github.com/woliveira1728/os-system-frontend/pkg"
)

const loginPath = "/auth/login"

// Client is the single configured request pipeline to the OS backend.
//
// Every outgoing request carries `Authorization: Bearer <token>` when the
// durable session store currently holds a token. Any 401 on a path other
// than the login endpoint is treated as a terminal authentication failure:
// the durable session is cleared and the unauthorized hook (session teardown
// plus return to the entry point) fires before the error is returned. The
// teardown is idempotent, so concurrent in-flight 401s are harmless.
//
// All other error statuses are surfaced unchanged as *pkg.DomainError; no
// automatic retries.

type Client struct {
	baseURL string
	httpc   *http.Client
	store   interfaces.ISessionStore

	mu             sync.Mutex
	onUnauthorized func()
}

var _ interfaces.IAPIGateway = (*Client)(nil)

func NewClient(baseURL string, store interfaces.ISessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		store:   store,
	}
}

// SetUnauthorizedHook installs the callback invoked after a 401 teardown.
// Wired once at startup; the gateway already cleared durable state when the
// hook runs, so the hook only handles in-memory state and navigation.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPut, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodDelete, path, nil)
}

func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("multipart field %s: %w", k, err)
		}
	}
	part, err := w.CreateFormFile(fileField, filename)
	if err != nil {
		return nil, fmt.Errorf("multipart file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("multipart file copy: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("multipart finalize: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, &buf, w.FormDataContentType())
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, reader, "application/json")
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := c.store.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !strings.Contains(path, loginPath) {
		c.teardownSession(method, path)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		msg := serverMessage(data, resp.StatusCode)
		log.Printf("[gateway][http] %s %s rejected status=%d message=%q", method, path, resp.StatusCode, msg)
		return nil, pkg.NewDomainErrorSimple(fmt.Sprintf("HTTP_%d", resp.StatusCode), msg, resp.StatusCode)
	}
	return data, nil
}

// teardownSession clears the durable session and fires the unauthorized hook.
// Clearing an already-empty store is a no-op, so every concurrent observer of
// a 401 can run this safely.
func (c *Client) teardownSession(method, path string) {
	log.Printf("[gateway][http] 401 on %s %s, clearing session", method, path)
	if err := c.store.Clear(); err != nil {
		log.Printf("[gateway][http] session clear failed: %v", err)
	}
	c.mu.Lock()
	hook := c.onUnauthorized
	c.mu.Unlock()
	if hook != nil {
		hook()
	}
}

// serverMessage extracts the backend's `message` field, falling back to the
// standard status text when the body is empty or not the expected shape.
func serverMessage(data []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(status)
}
