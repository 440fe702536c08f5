package request

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"slotkeeper/shared"
	"slotkeeper/shared/constant"
)

// UUIDParam reads a required uuid path parameter.
func UUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	value := chi.URLParam(r, name)

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, shared.InvalidParam(name, value)
	}

	return id, nil
}

// UUIDQuery reads a required uuid query parameter.
func UUIDQuery(r *http.Request, name string) (uuid.UUID, error) {
	value := r.URL.Query().Get(name)

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, shared.InvalidParam(name, value)
	}

	return id, nil
}

func IdempotencyKey(r *http.Request) string {
	return r.Header.Get(constant.RequestHeaderIdempotencyKey)
}

// HasBody reports whether the client sent a body worth decoding.
func HasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}
