package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"mathgames/internal/security"
)

// Middleware holds dependencies for the HTTP middleware chain
type Middleware struct {
	allowedOrigins map[string]bool
	limiter        *security.RateLimiter
}

// NewMiddleware creates the middleware chain for the API.
// Origins are matched exactly against the normalized allow-list.
func NewMiddleware(allowedOrigins []string, limiter *security.RateLimiter) *Middleware {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &Middleware{
		allowedOrigins: origins,
		limiter:        limiter,
	}
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLog logs every request with a generated request ID, the
// response status, and the handling duration
func (m *Middleware) RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		start := time.Now()
		next.ServeHTTP(recorder, r)

		log.Printf("[%s] %s %s -> %d (%s)", requestID, r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}

// CORS applies the configured origin allow-list. Requests without an
// Origin header (curl, mobile apps) pass through untouched.
func (m *Middleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			normalized := origin
			if len(normalized) > 0 && normalized[len(normalized)-1] == '/' {
				normalized = normalized[:len(normalized)-1]
			}

			if !m.allowedOrigins[normalized] {
				log.Printf("CORS: origin %s not allowed", origin)
				http.Error(w, "Origin not allowed", http.StatusForbidden)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RateLimit rejects clients that exceed the configured request budget
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.GetClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "Demasiadas solicitudes", "", nil)
			return
		}
		next(w, r)
	}
}
