package interfaces

import (
	"context"
	"encoding/json"
	"io"
)

// IAPIGateway abstracts the configured request pipeline to the OS backend.
//
// Implementations attach the bearer token held in durable storage to every
// call and perform the global session teardown when any authenticated call
// is rejected with 401. Server rejections come back as *pkg.DomainError;
// transport failures as plain wrapped errors. No retries.
type IAPIGateway interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Patch(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)

	// PostMultipart sends a multipart/form-data request with the given text
	// fields plus a single file part named fileField.
	PostMultipart(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader) (json.RawMessage, error)
}
