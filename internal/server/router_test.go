package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/qrbill/internal/db"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.SeedPostalCodes(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return New(conn)
}

func TestHealthRoute(t *testing.T) {
	router := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("body: %s", w.Body.String())
	}
}

func TestValidateRoute(t *testing.T) {
	router := setupRouter(t)
	body := `{"currency":"CHF","account":"CH5800791123000889012",` +
		`"creditor":{"name":"Robert Schneider AG","street":"Rue du Lac","houseNo":"1268",` +
		`"postalCode":"2501","town":"Biel","countryCode":"CH"}}`
	req := httptest.NewRequest(http.MethodPost, "/qrbill-api/bill/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Valid      bool   `json:"valid"`
		QRCodeText string `json:"qrCodeText"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Valid || resp.QRCodeText == "" {
		t.Fatalf("response: %s", w.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/qrbill-api/bill/validate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", w.Code)
	}
	if w.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("Allow header: %q", w.Header().Get("Allow"))
	}
}

func TestSuggestRoute(t *testing.T) {
	router := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/qrbill-api/postal-codes/suggest?country=CH&substring=9400", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Rorschach") {
		t.Fatalf("body: %s", w.Body.String())
	}
}
