package common

import (
	"log"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/matst80/slask-listing/pkg/tracking"
)

// JsonHandler wraps a handler with OPTIONS/CORS handling, the session
// cookie and a response encoder. Handler errors are logged, the handler is
// expected to have written a status itself.
func JsonHandler(trk tracking.Tracking, fn func(w http.ResponseWriter, r *http.Request, sessionId string, enc sonic.Encoder) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}
		sessionId := HandleSessionCookie(trk, w, r)
		w.Header().Set("Content-Type", "application/json")

		if err := fn(w, r, sessionId, sonic.ConfigDefault.NewEncoder(w)); err != nil {
			log.Printf("error handling request %s: %v", r.URL.Path, err)
		}
	}
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.WriteHeader(http.StatusAccepted)
}

func HttpError(w http.ResponseWriter, message string, code int) {
	w.WriteHeader(code)
	_, err := w.Write([]byte(`{"error":` + quote(message) + `}`))
	if err != nil {
		log.Printf("error writing error response: %v", err)
	}
}

func quote(message string) string {
	data, err := sonic.Marshal(message)
	if err != nil {
		return `"error"`
	}
	return string(data)
}
