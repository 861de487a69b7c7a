package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MrKriegler/go-motor-portal/pkg/problem"
)

// DefaultPublicPaths bypass the API key check.
var DefaultPublicPaths = []string{"/health", "/readyz", "/swagger"}

// APIKey guards the portal API with a shared key sent as X-API-Key or
// Authorization: Bearer <key>. Requests under a public prefix pass through.
func APIKey(apiKey string, publicPrefixes ...string) func(http.Handler) http.Handler {
	apiKeyBytes := []byte(apiKey)
	if len(publicPrefixes) == 0 {
		publicPrefixes = DefaultPublicPaths
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range publicPrefixes {
				if strings.HasPrefix(r.URL.Path, p) {
					next.ServeHTTP(w, r)
					return
				}
			}

			// Constant-time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(requestKey(r)), apiKeyBytes) != 1 {
				problem.Write(w, http.StatusUnauthorized, "Unauthorized", "Invalid or missing API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requestKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	if key, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return key
	}
	return ""
}
