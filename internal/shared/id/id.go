// Package id provides request identifier resolution for the API.
//
// Every request carries a correlation id that ties together the response
// header, the JSON body, and the per-request log line. Callers may supply
// their own id via the x-request-id header; otherwise one is generated.
package id

import (
	"encoding/hex"
	"net/http"

	"github.com/google/uuid"
)

// Header is the correlation header read from requests and stamped on
// every response.
const Header = "x-request-id"

// Resolver resolves correlation ids for inbound requests.
type Resolver struct {
	newID func() uuid.UUID
}

// NewResolver creates a resolver backed by random UUIDs.
func NewResolver() *Resolver {
	return &Resolver{newID: uuid.New}
}

// NewResolverWithSource creates a resolver with a custom id source.
// Useful for testing with deterministic ids.
func NewResolverWithSource(newID func() uuid.UUID) *Resolver {
	return &Resolver{newID: newID}
}

// FromHeader returns the caller-supplied x-request-id verbatim when present
// and non-empty, otherwise a freshly generated id. Never returns "".
func (r *Resolver) FromHeader(h http.Header) string {
	if v := h.Get(Header); v != "" {
		return v
	}
	return r.Generate()
}

// Generate returns a new random id as 32 lowercase hex characters.
func (r *Resolver) Generate() string {
	u := r.newID()
	return hex.EncodeToString(u[:])
}
