package server

import (
	"log"
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/matst80/slask-listing/pkg/common"
)

const tokenCookieName = "sl-admin"

var secretKey = []byte(os.Getenv("LISTING_TOKEN_HASH"))
var apiKey = os.Getenv("LISTING_API_KEY")

// AuthMiddleware guards admin endpoints, either the shared API key header
// or a valid admin jwt cookie passes.
func (ws *WebServer) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if apiKey == "" || auth != apiKey {
			cookie, err := r.Cookie(tokenCookieName)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
				return secretKey, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	}
}

// Reload re-reads the reference data from disk. On failure the previous
// catalog keeps serving.
func (ws *WebServer) Reload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		common.HttpError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := ws.Catalog.Reload(); err != nil {
		log.Printf("catalog reload failed: %v", err)
		common.HttpError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
