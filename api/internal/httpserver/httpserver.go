package httpserver

import (
	"log"
	"net/http"
	"strings"

	"calc-be/api/internal/handle"
)

// Origins the canvas frontend is served from; dev mode allows anything.
var allowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"https://*.vercel.app",
	"https://*.vercel.com",
}

func NewMux(h *handle.Handle) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Server is running"}`))
	})

	mux.HandleFunc("/calculate", h.Calculate)
	mux.HandleFunc("/calculate/", h.Calculate)

	mux.HandleFunc("/math/evaluate", h.Evaluate)
	mux.HandleFunc("/math/differentiate", h.Differentiate)
	mux.HandleFunc("/math/integrate", h.Integrate)
	mux.HandleFunc("/math/plot", h.Plot)
	mux.HandleFunc("/convert", h.Convert)

	return mux
}

func StartHTTP(addr, env string, h *handle.Handle) error {
	log.Printf("listening on %s (env=%s)", addr, env)
	return http.ListenAndServe(addr, CORS(env, NewMux(h)))
}

// CORS applies the frontend origin allow-list; env=dev admits any origin.
func CORS(env string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (env == "dev" || originAllowed(origin)) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Timeout")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string) bool {
	for _, allowed := range allowedOrigins {
		if allowed == origin {
			return true
		}
		// "https://*.vercel.app" matches any subdomain.
		if star := strings.Index(allowed, "*"); star >= 0 {
			prefix, suffix := allowed[:star], allowed[star+1:]
			if strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix) {
				return true
			}
		}
	}
	return false
}
