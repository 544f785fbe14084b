package models

// PostalCode is one entry of the Swiss postal code directory used for the
// suggestion endpoint. TownLower is stored alongside the town so lookups
// stay case-insensitive without relying on database collations.
type PostalCode struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	Code      string `gorm:"index" json:"postalCode"`
	Town      string `json:"town"`
	TownLower string `gorm:"index" json:"-"`
}
