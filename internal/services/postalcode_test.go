package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/qrbill/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.PostalCode{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	entries := []models.PostalCode{
		{Code: "1000", Town: "Lausanne"},
		{Code: "1207", Town: "Genève"},
		{Code: "2501", Town: "Biel/Bienne"},
		{Code: "4058", Town: "Basel"},
		{Code: "8001", Town: "Zürich"},
		{Code: "8002", Town: "Zürich"},
		{Code: "8302", Town: "Kloten"},
		{Code: "9400", Town: "Rorschach"},
	}
	for i := range entries {
		entries[i].TownLower = strings.ToLower(entries[i].Town)
	}
	if err := conn.Create(&entries).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	return conn
}

func codes(result []models.PostalCode) []string {
	var out []string
	for _, pc := range result {
		out = append(out, pc.Code)
	}
	return out
}

func TestSuggestCodePrefix(t *testing.T) {
	svc := NewPostalCodeService(setupTestDB(t))
	result, err := svc.Suggest("CH", "80")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	got := codes(result)
	if len(got) != 2 || got[0] != "8001" || got[1] != "8002" {
		t.Fatalf("got %v, want [8001 8002]", got)
	}
}

func TestSuggestCodeSubstring(t *testing.T) {
	svc := NewPostalCodeService(setupTestDB(t))
	result, err := svc.Suggest("", "302")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	got := codes(result)
	if len(got) != 1 || got[0] != "8302" {
		t.Fatalf("got %v, want [8302]", got)
	}
}

func TestSuggestShortSubstringIsPrefixOnly(t *testing.T) {
	svc := NewPostalCodeService(setupTestDB(t))
	// "00" appears inside several codes but starts none
	result, err := svc.Suggest("CH", "00")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("got %v, want no matches", codes(result))
	}
}

func TestSuggestTown(t *testing.T) {
	svc := NewPostalCodeService(setupTestDB(t))
	result, err := svc.Suggest("CH", "Zürich")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("got %v, want the two Zürich entries", codes(result))
	}
	for _, pc := range result {
		if pc.Town != "Zürich" {
			t.Errorf("unexpected town %q", pc.Town)
		}
	}
}

func TestSuggestTownSubstring(t *testing.T) {
	svc := NewPostalCodeService(setupTestDB(t))
	result, err := svc.Suggest("CH", "schach")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(result) != 1 || result[0].Town != "Rorschach" {
		t.Fatalf("got %v, want Rorschach", result)
	}
}

func TestSuggestOtherCountry(t *testing.T) {
	svc := NewPostalCodeService(setupTestDB(t))
	result, err := svc.Suggest("DE", "80")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected no suggestions for DE, got %v", codes(result))
	}
}

func TestSuggestEmptySubstring(t *testing.T) {
	svc := NewPostalCodeService(setupTestDB(t))
	result, err := svc.Suggest("CH", "  ")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected no suggestions, got %v", codes(result))
	}
}
