package entities

import (
	"sort"
	"time"
)

// ChecklistItem is a sub-task of a service order.
type ChecklistItem struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Notes     string    `json:"notes,omitempty"`
	Required  bool      `json:"required"`
	Position  int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SortChecklist returns items in the canonical display order: ascending by
// the backend-assigned position, ties broken by ascending creation time.
// The input slice is not modified; a missing creation time sorts first.
func SortChecklist(items []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
