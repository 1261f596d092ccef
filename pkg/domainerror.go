package pkg

import (
	"errors"
	"fmt"
)

// DomainError is the coded error envelope shared by the HTTP gateway (for
// server rejections it surfaces to usecases) and the stub API (for the JSON
// error bodies it serves).

type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func NewDomainErrorSimple(code, message string, httpStatus int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPError is the wire shape of an error response.
type HTTPError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *DomainError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// AsDomainError unwraps err into a *DomainError when one is in the chain.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
