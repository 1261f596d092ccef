package interfaces

import (
	"context"

	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
)

// IOrderReader is the slice of the orders usecase the photo pipeline needs:
// a fresh fetch of one order after an upload or deletion confirmed.
type IOrderReader interface {
	GetOrder(ctx context.Context, id string) (entities.Order, error)
}
