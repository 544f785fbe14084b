// Package swico encodes and decodes structured bill information according to
// the Swico S1 syntax. The encoded text is carried in the billing
// information field of a QR bill.
//
// See the Syntaxdefinition S1 at https://www.swiss-qr-invoice.org/.
package swico

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillInformation is the structured billing metadata of an invoice: invoice
// and customer identifiers, VAT details and payment conditions. Absent
// fields hold empty strings or nil.
type BillInformation struct {
	// InvoiceNumber is the invoice number as assigned by the biller.
	InvoiceNumber string
	InvoiceDate   *time.Time

	// CustomerReference is the reference assigned by the customer.
	CustomerReference string

	// VATNumber is the biller's VAT number (numeric part only).
	VATNumber string

	// VATDate is the date relevant for VAT, mutually exclusive with the
	// start/end date pair.
	VATDate      *time.Time
	VATStartDate *time.Time
	VATEndDate   *time.Time

	// VATRate is the single VAT rate in percent, mutually exclusive with
	// VATRateDetails.
	VATRate        *decimal.Decimal
	VATRateDetails []RateDetail

	// VATImportTaxes lists the VAT amounts levied on import, per rate.
	VATImportTaxes []RateDetail

	PaymentConditions []PaymentCondition
}

// RateDetail is a tuple of a VAT rate (in percent) and the amount it
// applies to (tag 32) or the tax amount itself (tag 33).
type RateDetail struct {
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// PaymentCondition is a cash discount in percent granted if payment is made
// within the given number of days.
type PaymentCondition struct {
	Discount decimal.Decimal
	Days     int
}

// DueDate derives the payment due date: the invoice date plus the days of
// the payment condition with a discount of zero. It returns nil if there is
// no such condition or no invoice date.
func (b *BillInformation) DueDate() *time.Time {
	if b.InvoiceDate == nil {
		return nil
	}
	for _, c := range b.PaymentConditions {
		if c.Discount.IsZero() {
			due := b.InvoiceDate.AddDate(0, 0, c.Days)
			return &due
		}
	}
	return nil
}
