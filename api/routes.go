package api

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/damianp1350/ToDoAPI/handler"
	"github.com/damianp1350/ToDoAPI/metrics"
)

// statusRecorder captures the status code written by a handler so the
// logging and metrics middleware can see it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// corsMiddleware handles cross-origin requests.
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// recoverMiddleware catches panics so one request cannot take the server down.
func recoverMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next(w, r)
	}
}

// observeMiddleware tags each request with an id, logs it and records
// metrics under the route pattern rather than the raw path.
func observeMiddleware(route string, next http.HandlerFunc) http.HandlerFunc {
	m := metrics.Get()
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		duration := time.Since(start)
		m.RecordHTTPRequest(r.Method, route, rec.status, duration)
		log.Printf("[%s] %s %s -> %d (%s)", requestID, r.Method, r.URL.Path, rec.status, duration)
	}
}

// chain links multiple middlewares.
func chain(f http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		f = middlewares[i](f)
	}
	return f
}

func SetupRoutes(h *handler.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	optionsHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	register := func(method, route string, f http.HandlerFunc) {
		wrapped := chain(f, corsMiddleware, recoverMiddleware, func(next http.HandlerFunc) http.HandlerFunc {
			return observeMiddleware(route, next)
		})
		mux.HandleFunc(method+" "+route, wrapped)
	}

	base := "/api/todos"

	register("GET", base+"/get-all", h.GetAll)
	register("GET", base+"/get-incoming", h.GetIncoming)
	register("GET", base+"/{id}/get-by-id", h.GetByID)
	register("POST", base+"/create", h.Create)
	register("PUT", base+"/{id}/update", h.Update)
	register("PATCH", base+"/{id}/percent-complete", h.SetPercentComplete)
	register("PATCH", base+"/{id}/mark-as-done", h.MarkAsDone)
	register("DELETE", base+"/{id}/delete", h.Delete)

	mux.HandleFunc("OPTIONS "+base+"/", corsMiddleware(optionsHandler))

	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.Handle("GET /metrics", metrics.HTTPHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
