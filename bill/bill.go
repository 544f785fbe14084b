// Package bill defines the QR bill data model: the bill itself, addresses,
// alternative payment schemes and the diagnostics produced by validation.
package bill

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/diewo77/qrbill/charset"
)

// Version is the version of the QR bill data format.
type Version int

const (
	// V2_0 is the current data format (version line "0200").
	V2_0 Version = iota
	// V1_0 is the legacy data format (version line "0100").
	V1_0
)

// Language of the generated QR bill.
type Language int

const (
	LanguageEN Language = iota
	LanguageDE
	LanguageFR
	LanguageIT
)

// Format holds the formatting options of a bill that do not affect the
// payment data itself.
type Format struct {
	// Language of the bill.
	Language Language
	// CharacterSet used to clean and validate text fields.
	CharacterSet charset.CharacterSet
}

// DefaultFormat returns the format used when none is set: English with the
// restrictive Latin-1 subset character set.
func DefaultFormat() Format {
	return Format{Language: LanguageEN, CharacterSet: charset.Latin1Subset}
}

// Reference types as they appear in the payment record.
const (
	ReferenceTypeNoRef   = "NON"
	ReferenceTypeQRRef   = "QRR"
	ReferenceTypeCredRef = "SCOR"
)

// Bill is a QR bill. All fields hold raw caller data until the bill has been
// run through validation; the validator returns a cleaned copy.
type Bill struct {
	Version Version

	// Amount to be paid. Nil means an open amount (payer fills it in).
	Amount   *decimal.Decimal
	Currency string

	// Account is the creditor's IBAN or QR-IBAN.
	Account string

	Creditor         *Address
	UltimateCreditor *Address
	Debtor           *Address

	// Reference is the payment reference (QR reference or ISO 11649
	// creditor reference). Empty if there is none.
	Reference string

	UnstructuredMessage string
	BillInformation     string

	// AlternativeSchemes holds at most two alternative payment scheme
	// instructions.
	AlternativeSchemes []AlternativeScheme

	// DueDate is only part of the legacy 0100 data format.
	DueDate *time.Time

	Format Format
}

// ReferenceType derives the reference type tag from the reference format:
// "NON" for no reference, "SCOR" for ISO 11649 creditor references and "QRR"
// otherwise.
func (b *Bill) ReferenceType() string {
	return ReferenceTypeFor(b.Reference)
}

// ReferenceTypeFor derives the reference type tag for a payment reference.
func ReferenceTypeFor(reference string) string {
	if reference == "" {
		return ReferenceTypeNoRef
	}
	if len(reference) >= 2 && reference[0] == 'R' && reference[1] == 'F' {
		return ReferenceTypeCredRef
	}
	return ReferenceTypeQRRef
}

// AlternativeScheme is an instruction for an alternative payment procedure,
// printed below the payment part.
type AlternativeScheme struct {
	// Name of the scheme, for the human-readable label.
	Name string
	// Instruction is the machine-readable scheme line.
	Instruction string
}

// Equal reports whether two bills hold the same payment data.
func (b *Bill) Equal(other *Bill) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Version != other.Version ||
		b.Currency != other.Currency ||
		b.Account != other.Account ||
		b.Reference != other.Reference ||
		b.UnstructuredMessage != other.UnstructuredMessage ||
		b.BillInformation != other.BillInformation ||
		b.Format != other.Format {
		return false
	}
	if !equalAmount(b.Amount, other.Amount) {
		return false
	}
	if !equalDate(b.DueDate, other.DueDate) {
		return false
	}
	if !b.Creditor.Equal(other.Creditor) ||
		!b.UltimateCreditor.Equal(other.UltimateCreditor) ||
		!b.Debtor.Equal(other.Debtor) {
		return false
	}
	if len(b.AlternativeSchemes) != len(other.AlternativeSchemes) {
		return false
	}
	for i, s := range b.AlternativeSchemes {
		if s != other.AlternativeSchemes[i] {
			return false
		}
	}
	return true
}

func equalAmount(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
