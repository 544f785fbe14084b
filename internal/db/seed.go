package db

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	_ "embed"

	"gorm.io/gorm"

	"github.com/diewo77/qrbill/internal/models"
)

// Bundled subset of the Swiss postal code directory
// (swisstopo "Ortschaftenverzeichnis PLZ"; town;code per line).
//
//go:embed postal_codes.csv
var bundledPostalCodes string

// SeedPostalCodes fills the postal code directory from the bundled data if
// it is still empty.
func SeedPostalCodes(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.PostalCode{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count postal codes: %w", err)
	}
	if count > 0 {
		return nil
	}
	return ImportPostalCodes(conn, strings.NewReader(bundledPostalCodes))
}

// ImportPostalCodes replaces the postal code directory with the entries read
// from r. Each line holds a town and a postal code separated by a semicolon;
// the first line is a header.
func ImportPostalCodes(conn *gorm.DB, r io.Reader) error {
	var entries []models.PostalCode
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		values := strings.Split(line, ";")
		if len(values) < 2 {
			continue
		}
		town := strings.TrimSpace(values[0])
		code := strings.TrimSpace(values[1])
		entries = append(entries, models.PostalCode{
			Code:      code,
			Town:      town,
			TownLower: strings.ToLower(town),
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read postal codes: %w", err)
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.PostalCode{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.CreateInBatches(entries, 500).Error
	})
}
