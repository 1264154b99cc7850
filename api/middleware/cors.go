package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"https://admin.packfinderz.com",
}

// CORS returns middleware that applies the admin API's allowed origin policy.
// Download headers are exposed so browsers can read the export file name.
func CORS(origins ...string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-Id", "X-Export-Rows", "X-Export-Cache"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
