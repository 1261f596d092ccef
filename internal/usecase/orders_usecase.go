package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
	"github.com/woliveira1728/os-system-frontend/internal/usecase/interfaces"
	"github.com/woliveira1728/os-system-frontend/pkg"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidOrderData      = errors.New("invalid order data")
	ErrInvalidOrderStatus    = errors.New("invalid order status")
	ErrInvalidChecklistTitle = errors.New("invalid checklist title")
	ErrInvalidChecklistID    = errors.New("invalid checklist item id")
)

// IOrdersUseCase is the in-memory cache of the order list plus the checklist
// operations of the active order.
//
// Every mutation follows the refresh-after-write pattern: the cached list is
// only ever replaced by a full re-fetch, never patched optimistically.
// Checklist mutations are fire-and-forget; callers re-run FetchChecklist to
// observe the result, keeping write and refresh two separately-failable
// steps.

type IOrdersUseCase interface {
	RefreshOrders(ctx context.Context)
	Orders() []entities.Order
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	CreateOrder(ctx context.Context, data entities.CreateOrderData) error
	UpdateOrder(ctx context.Context, id string, data entities.CreateOrderData) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) error
	DeleteOrder(ctx context.Context, id string) error
	FetchChecklist(ctx context.Context, orderID string) ([]entities.ChecklistItem, error)
	AddChecklistItem(ctx context.Context, orderID, title string) error
	ToggleChecklistItem(ctx context.Context, itemID string) error
	DeleteChecklistItem(ctx context.Context, itemID string) error
	Subscribe(fn func())
}

type OrdersUseCase struct {
	gateway interfaces.IAPIGateway

	mu          sync.RWMutex
	orders      []entities.Order
	subscribers []func()
}

var _ IOrdersUseCase = (*OrdersUseCase)(nil)
var _ interfaces.IOrderReader = (*OrdersUseCase)(nil)

func NewOrdersUseCase(gateway interfaces.IAPIGateway) *OrdersUseCase {
	return &OrdersUseCase{gateway: gateway}
}

// Subscribe registers a callback fired after every cache replacement.
func (u *OrdersUseCase) Subscribe(fn func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.subscribers = append(u.subscribers, fn)
}

// RefreshOrders replaces the whole cached list with a fresh fetch. It fails
// soft: on any failure the cache becomes empty rather than keeping stale
// data, so a failed fetch reads like "no orders" instead of outdated state.
func (u *OrdersUseCase) RefreshOrders(ctx context.Context) {
	raw, err := u.gateway.Get(ctx, "/orders")
	if err != nil {
		log.Printf("[orders][usecase] list fetch failed: %v", err)
		u.replaceCache(nil)
		return
	}
	var orders []entities.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		log.Printf("[orders][usecase] list decode failed: %v", err)
		u.replaceCache(nil)
		return
	}
	u.replaceCache(orders)
}

func (u *OrdersUseCase) replaceCache(orders []entities.Order) {
	u.mu.Lock()
	u.orders = orders
	subs := make([]func(), len(u.subscribers))
	copy(subs, u.subscribers)
	u.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Orders returns a snapshot of the cached list.
func (u *OrdersUseCase) Orders() []entities.Order {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]entities.Order, len(u.orders))
	copy(out, u.orders)
	return out
}

// GetOrder always fetches fresh: the detail view needs the nested checklist
// and photo data the list cache never holds.
func (u *OrdersUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	raw, err := u.gateway.Get(ctx, "/orders/"+id)
	if err != nil {
		if derr, ok := pkg.AsDomainError(err); ok && derr.HTTPStatus == http.StatusNotFound {
			return entities.Order{}, ErrOrderNotFound
		}
		return entities.Order{}, err
	}
	var order entities.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return entities.Order{}, fmt.Errorf("decode order %s: %w", id, err)
	}
	return order, nil
}

func (u *OrdersUseCase) CreateOrder(ctx context.Context, data entities.CreateOrderData) error {
	if strings.TrimSpace(data.Title) == "" || strings.TrimSpace(data.Description) == "" {
		return ErrInvalidOrderData
	}

	if _, err := u.gateway.Post(ctx, "/orders", data); err != nil {
		return err
	}
	log.Printf("[orders][usecase] order created title=%q", data.Title)
	u.RefreshOrders(ctx)
	return nil
}

// UpdateOrder applies a partial update and returns the re-fetched order, so
// the caller's detail view reflects what the server actually stored.
func (u *OrdersUseCase) UpdateOrder(ctx context.Context, id string, data entities.CreateOrderData) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	if _, err := u.gateway.Put(ctx, "/orders/"+id, data); err != nil {
		return entities.Order{}, err
	}
	log.Printf("[orders][usecase] order updated order_id=%s", id)
	return u.GetOrder(ctx, id)
}

func (u *OrdersUseCase) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	if !entities.ValidOrderStatus(status) {
		return ErrInvalidOrderStatus
	}

	body := map[string]entities.OrderStatus{"status": status}
	if _, err := u.gateway.Patch(ctx, "/orders/"+id+"/status", body); err != nil {
		return err
	}
	log.Printf("[orders][usecase] status updated order_id=%s status=%s", id, status)
	u.RefreshOrders(ctx)
	return nil
}

func (u *OrdersUseCase) DeleteOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	if _, err := u.gateway.Delete(ctx, "/orders/"+id); err != nil {
		return err
	}
	log.Printf("[orders][usecase] order deleted order_id=%s", id)
	u.RefreshOrders(ctx)
	return nil
}

// FetchChecklist returns the order's checklist already in canonical
// (position, createdAt) order.
func (u *OrdersUseCase) FetchChecklist(ctx context.Context, orderID string) ([]entities.ChecklistItem, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	raw, err := u.gateway.Get(ctx, "/checklist/orders/"+orderID+"/checklist")
	if err != nil {
		return nil, err
	}
	var items []entities.ChecklistItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode checklist for order %s: %w", orderID, err)
	}
	return entities.SortChecklist(items), nil
}

func (u *OrdersUseCase) AddChecklistItem(ctx context.Context, orderID, title string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrInvalidOrderID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidChecklistTitle
	}

	body := map[string]string{"title": title}
	_, err := u.gateway.Post(ctx, "/checklist/orders/"+orderID+"/checklist", body)
	return err
}

func (u *OrdersUseCase) ToggleChecklistItem(ctx context.Context, itemID string) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrInvalidChecklistID
	}

	_, err := u.gateway.Patch(ctx, "/checklist/"+itemID+"/toggle", nil)
	return err
}

func (u *OrdersUseCase) DeleteChecklistItem(ctx context.Context, itemID string) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrInvalidChecklistID
	}

	_, err := u.gateway.Delete(ctx, "/checklist/"+itemID)
	return err
}
