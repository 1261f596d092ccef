package entities

import (
	"strings"
	"time"
)

// Photo is an image attached to a service order.
type Photo struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	Filename     string    `json:"filename"`
	URL          string    `json:"url"`
	Path         string    `json:"path,omitempty"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimeType"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DisplayURL resolves the address a photo can be fetched from, given the API
// origin (base URL with the /api suffix stripped). Resolution order: url,
// then path, then filename under the /uploads root. Returns "" when the
// record carries none of the three; such photos are skipped from display.
func (p Photo) DisplayURL(origin string) string {
	if p.URL != "" {
		if strings.HasPrefix(p.URL, "http") {
			return p.URL
		}
		return origin + p.URL
	}
	if p.Path != "" {
		if strings.HasPrefix(p.Path, "http") {
			return p.Path
		}
		return origin + p.Path
	}
	if p.Filename != "" {
		return origin + "/uploads/" + p.Filename
	}
	return ""
}
