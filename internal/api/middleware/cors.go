package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS builds a credentialed CORS middleware from the configured origin
// allowlist. Credentials must be allowed for the session cookie to travel.
func CORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler
}
