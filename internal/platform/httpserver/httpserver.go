// Package httpserver builds the process's HTTP server with shared timeouts.
package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server for the wizard API. Wizard requests are small
// JSON bodies; the write timeout leaves headroom for the outbound lead call
// on submission.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
