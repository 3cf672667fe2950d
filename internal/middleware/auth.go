// middleware/auth.go
// Middleware untuk cek API key. Aktif hanya bila env API_KEY diisi;
// tanpa itu semua request lolos (mode dev).

package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"
)

func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := strings.TrimSpace(os.Getenv("API_KEY"))
		if expected != "" {
			apiKey := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
