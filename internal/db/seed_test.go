package db

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/qrbill/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func TestSeedPostalCodes(t *testing.T) {
	conn := openTestDB(t)
	if err := SeedPostalCodes(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var count int64
	if err := conn.Model(&models.PostalCode{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count == 0 {
		t.Fatal("bundled data should have been imported")
	}

	var pc models.PostalCode
	if err := conn.Where("code = ?", "9400").First(&pc).Error; err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if pc.Town != "Rorschach" || pc.TownLower != "rorschach" {
		t.Fatalf("entry: %+v", pc)
	}

	// seeding again must not duplicate entries
	if err := SeedPostalCodes(conn); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	var again int64
	if err := conn.Model(&models.PostalCode{}).Count(&again).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if again != count {
		t.Fatalf("seed is not idempotent: %d then %d entries", count, again)
	}
}

func TestImportPostalCodesReplaces(t *testing.T) {
	conn := openTestDB(t)
	if err := ImportPostalCodes(conn, strings.NewReader("header\nBern;3000\n")); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := ImportPostalCodes(conn, strings.NewReader("header\nThun;3600\nLyss;3250\n")); err != nil {
		t.Fatalf("import: %v", err)
	}

	var result []models.PostalCode
	if err := conn.Order("code").Find(&result).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(result) != 2 || result[0].Town != "Lyss" || result[1].Town != "Thun" {
		t.Fatalf("result: %+v", result)
	}
}

func TestIsPostgresDSN(t *testing.T) {
	cases := map[string]bool{
		"postgres://user:pw@localhost:5432/qrbill": true,
		"host=localhost user=qrbill dbname=qrbill": true,
		"file:qrbill.db":                     false,
		"file:test?mode=memory&cache=shared": false,
	}
	for dsn, want := range cases {
		if got := isPostgresDSN(dsn); got != want {
			t.Errorf("isPostgresDSN(%q) = %v, want %v", dsn, got, want)
		}
	}
}
