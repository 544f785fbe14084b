// Package services holds the database-backed lookups used by the handlers.
package services

import (
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/diewo77/qrbill/internal/models"
)

const maxSuggestedItems = 20

// PostalCodeService suggests Swiss postal codes and towns for address entry.
type PostalCodeService struct {
	db *gorm.DB
}

func NewPostalCodeService(db *gorm.DB) *PostalCodeService {
	return &PostalCodeService{db: db}
}

// Suggest returns up to 20 directory entries matching the substring. Only
// Swiss data exists, so any other country yields no suggestions. A numeric
// substring matches postal codes, anything else matches town names. Prefix
// matches come first; substring matches are added only when the prefix
// search finds fewer than 6 entries and the substring has at least 3
// characters.
func (s *PostalCodeService) Suggest(country, substring string) ([]models.PostalCode, error) {
	if country != "" && country != "CH" {
		return nil, nil
	}
	substring = strings.TrimSpace(substring)
	if substring == "" {
		return nil, nil
	}

	if isNumeric(substring) {
		return s.matches("code", substring, substring)
	}
	return s.matches("town_lower", strings.ToLower(substring), substring)
}

func (s *PostalCodeService) matches(column, needle, original string) ([]models.PostalCode, error) {
	pattern := escapeLike(needle)

	var result []models.PostalCode
	err := s.db.
		Where(column+" LIKE ? ESCAPE '\\'", pattern+"%").
		Order(column).Order("id").
		Limit(maxSuggestedItems).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	if utf8.RuneCountInString(original) <= 2 || len(result) >= 6 {
		return result, nil
	}

	var rest []models.PostalCode
	err = s.db.
		Where(column+" LIKE ? ESCAPE '\\'", "%"+pattern+"%").
		Where(column+" NOT LIKE ? ESCAPE '\\'", pattern+"%").
		Order(column).Order("id").
		Limit(maxSuggestedItems - len(result)).
		Find(&rest).Error
	if err != nil {
		return nil, err
	}
	return append(result, rest...), nil
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(s)
}
