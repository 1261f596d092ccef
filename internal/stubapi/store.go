package stubapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
)

var (
	ErrInvalidLogin      = errors.New("invalid credentials")
	ErrEmailTaken        = errors.New("email already registered")
	ErrOrderNotFound     = errors.New("order not found")
	ErrChecklistNotFound = errors.New("checklist item not found")
	ErrPhotoNotFound     = errors.New("photo not found")
)

// Store is the stub backend's in-memory state. It exists so the client can
// run and be tested end to end without the real OS API; nothing survives a
// restart.

type Store struct {
	mu sync.Mutex

	users     map[string]entities.User // by id
	passwords map[string]string        // email -> password
	emails    map[string]string        // email -> user id
	tokens    map[string]string        // token -> user id

	orders    map[string]entities.Order
	checklist map[string]entities.ChecklistItem
	photos    map[string]entities.Photo
	photoData map[string][]byte // stored filename -> bytes
}

func NewStore() *Store {
	return &Store{
		users:     map[string]entities.User{},
		passwords: map[string]string{},
		emails:    map[string]string{},
		tokens:    map[string]string{},
		orders:    map[string]entities.Order{},
		checklist: map[string]entities.ChecklistItem{},
		photos:    map[string]entities.Photo{},
		photoData: map[string][]byte{},
	}
}

// Seed registers the default development account.
func (s *Store) Seed() {
	s.Register("Admin", "admin@example.com", "admin123", entities.RoleAdmin)
}

func (s *Store) Register(name, email, password string, role entities.UserRole) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	if _, taken := s.emails[email]; taken {
		return entities.User{}, ErrEmailTaken
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[user.ID] = user
	s.emails[email] = user.ID
	s.passwords[email] = password
	return user, nil
}

// Login checks the password and issues an opaque token.
func (s *Store) Login(email, password string) (string, entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	id, ok := s.emails[email]
	if !ok || s.passwords[email] != password {
		return "", entities.User{}, ErrInvalidLogin
	}

	token := uuid.NewString()
	s.tokens[token] = id
	return token, s.users[id], nil
}

// UserForToken resolves a bearer token to its user.
func (s *Store) UserForToken(token string) (entities.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	if !ok {
		return entities.User{}, false
	}
	user, ok := s.users[id]
	return user, ok
}

// RevokeToken invalidates one issued token.
func (s *Store) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

func (s *Store) CreateOrder(userID string, data entities.CreateOrderData) entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	priority := data.Priority
	if priority == "" {
		priority = entities.PriorityNormal
	}
	order := entities.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       data.Title,
		Description: data.Description,
		Status:      entities.OrderStatusPending,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.orders[order.ID] = order
	return order
}

// ListOrders returns every order, newest first, without nested data.
func (s *Store) ListOrders() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// GetOrder returns one order with its checklist and photos populated.
func (s *Store) GetOrder(id string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	for _, item := range s.checklist {
		if item.OrderID == id {
			order.Checklist = append(order.Checklist, item)
		}
	}
	order.Checklist = entities.SortChecklist(order.Checklist)
	for _, p := range s.photos {
		if p.OrderID == id {
			order.Photos = append(order.Photos, p)
		}
	}
	sort.Slice(order.Photos, func(i, j int) bool {
		return order.Photos[i].CreatedAt.Before(order.Photos[j].CreatedAt)
	})
	return order, nil
}

func (s *Store) UpdateOrder(id string, data entities.CreateOrderData) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	if data.Title != "" {
		order.Title = data.Title
	}
	if data.Description != "" {
		order.Description = data.Description
	}
	if data.Priority != "" {
		order.Priority = data.Priority
	}
	order.UpdatedAt = time.Now().UTC()
	s.orders[id] = order
	return order, nil
}

func (s *Store) UpdateOrderStatus(id string, status entities.OrderStatus) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	order.Status = status
	now := time.Now().UTC()
	order.UpdatedAt = now
	if status == entities.OrderStatusCompleted {
		order.CompletedAt = &now
	}
	s.orders[id] = order
	return order, nil
}

// DeleteOrder removes the order and everything attached to it.
func (s *Store) DeleteOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return ErrOrderNotFound
	}
	delete(s.orders, id)
	for itemID, item := range s.checklist {
		if item.OrderID == id {
			delete(s.checklist, itemID)
		}
	}
	for photoID, p := range s.photos {
		if p.OrderID == id {
			delete(s.photoData, storedName(p.URL))
			delete(s.photos, photoID)
		}
	}
	return nil
}

func (s *Store) ListChecklist(orderID string) ([]entities.ChecklistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[orderID]; !ok {
		return nil, ErrOrderNotFound
	}
	items := []entities.ChecklistItem{}
	for _, item := range s.checklist {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return entities.SortChecklist(items), nil
}

// AddChecklistItem appends an item with the next position number.
func (s *Store) AddChecklistItem(orderID, title string) (entities.ChecklistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[orderID]; !ok {
		return entities.ChecklistItem{}, ErrOrderNotFound
	}

	next := 1
	for _, item := range s.checklist {
		if item.OrderID == orderID && item.Position >= next {
			next = item.Position + 1
		}
	}

	now := time.Now().UTC()
	item := entities.ChecklistItem{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Title:     title,
		Position:  next,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.checklist[item.ID] = item
	return item, nil
}

func (s *Store) ToggleChecklistItem(itemID string) (entities.ChecklistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.checklist[itemID]
	if !ok {
		return entities.ChecklistItem{}, ErrChecklistNotFound
	}
	item.Completed = !item.Completed
	item.UpdatedAt = time.Now().UTC()
	s.checklist[itemID] = item
	return item, nil
}

func (s *Store) DeleteChecklistItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checklist[itemID]; !ok {
		return ErrChecklistNotFound
	}
	delete(s.checklist, itemID)
	return nil
}

// AddPhoto stores the uploaded bytes under a generated name and records the
// photo against the order.
func (s *Store) AddPhoto(orderID, filename, mimeType string, data []byte) (entities.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[orderID]; !ok {
		return entities.Photo{}, ErrOrderNotFound
	}

	stored := uuid.NewString() + "_" + filename
	photo := entities.Photo{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Filename:  filename,
		URL:       "/uploads/" + stored,
		Size:      int64(len(data)),
		MimeType:  mimeType,
		CreatedAt: time.Now().UTC(),
	}
	s.photos[photo.ID] = photo
	s.photoData[stored] = data
	return photo, nil
}

func (s *Store) DeletePhoto(photoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photo, ok := s.photos[photoID]
	if !ok {
		return ErrPhotoNotFound
	}
	delete(s.photoData, storedName(photo.URL))
	delete(s.photos, photoID)
	return nil
}

// PhotoBytes serves the stored upload by its stored filename.
func (s *Store) PhotoBytes(stored string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.photoData[stored]
	return data, ok
}

func storedName(url string) string {
	return strings.TrimPrefix(url, "/uploads/")
}
