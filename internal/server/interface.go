package server

import (
	"context"
	"net/http"
)

// Server serves the web form and the JSON API.
type Server interface {
	// Run listens until ctx is canceled, then shuts down gracefully.
	Run(ctx context.Context) error
	Handler() http.Handler
}
