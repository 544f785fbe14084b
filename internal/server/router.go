// Package server wires the HTTP routes of the QR bill service.
package server

import (
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/qrbill/httpx"
	"github.com/diewo77/qrbill/internal/handlers"
	"github.com/diewo77/qrbill/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	bh := handlers.NewBillHandler()
	mux.HandleFunc("/qrbill-api/bill/validate", post(bh.Validate))
	mux.HandleFunc("/qrbill-api/bill/decode", post(bh.Decode))
	mux.HandleFunc("/qrbill-api/bill/fromID", get(bh.FromID))

	ph := handlers.NewPostalCodeHandler(services.NewPostalCodeService(db))
	mux.HandleFunc("/qrbill-api/postal-codes/suggest", get(ph.Suggest))

	return withRecover(withLogging(mux))
}

func post(next http.HandlerFunc) http.HandlerFunc {
	return requireMethod(http.MethodPost, next)
}

func get(next http.HandlerFunc) http.HandlerFunc {
	return requireMethod(http.MethodGet, next)
}

func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		next(w, r)
	}
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
