// Package middleware holds the HTTP middleware mounted by the REST router.
package middleware

import "net/http"

// Middleware wraps an http.Handler. It has the shape chi's Use and With expect.
type Middleware = func(http.Handler) http.Handler
