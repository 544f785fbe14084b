package swico

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// S1 tags.
const (
	invoiceNumberTag     = 10
	invoiceDateTag       = 11
	customerReferenceTag = 20
	vatNumberTag         = 30
	vatDateTag           = 31
	vatRateDetailsTag    = 32
	vatImportTaxesTag    = 33
	paymentConditionsTag = 40
)

// Decode decodes structured bill information in Swico S1 syntax.
//
// As much data as possible is decoded; invalid or unknown elements are
// silently ignored for forward compatibility. Decode returns nil if the text
// does not start with the S1 prefix.
func Decode(billInfoText string) *BillInformation {
	if !strings.HasPrefix(billInfoText, "//S1/") {
		return nil
	}

	parts := split(billInfoText[5:])

	info := &BillInformation{}
	for i := 0; i+1 < len(parts); i += 2 {
		tag, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		decodeElement(info, tag, parts[i+1])
	}
	return info
}

func decodeElement(info *BillInformation, tag int, value string) {
	if value == "" {
		return
	}

	switch tag {
	case invoiceNumberTag:
		info.InvoiceNumber = value
	case invoiceDateTag:
		info.InvoiceDate = dateValue(value)
	case customerReferenceTag:
		info.CustomerReference = value
	case vatNumberTag:
		info.VATNumber = value
	case vatDateTag:
		setVATDates(info, value)
	case vatRateDetailsTag:
		setVATRateDetails(info, value)
	case vatImportTaxesTag:
		info.VATImportTaxes = parseDetailList(value)
	case paymentConditionsTag:
		setPaymentConditions(info, value)
	}
	// unknown tags are ignored
}

func setVATDates(info *BillInformation, value string) {
	switch len(value) {
	case 6:
		if date := dateValue(value); date != nil {
			info.VATDate = date
			info.VATStartDate = nil
			info.VATEndDate = nil
		}
	case 12:
		startDate := dateValue(value[:6])
		endDate := dateValue(value[6:])
		if startDate != nil && endDate != nil {
			info.VATStartDate = startDate
			info.VATEndDate = endDate
			info.VATDate = nil
		}
	}
}

func setVATRateDetails(info *BillInformation, value string) {
	// a bare number is a single rate, anything else is a tuple list
	if !strings.ContainsAny(value, ":;") {
		info.VATRate = decimalValue(value)
		info.VATRateDetails = nil
	} else {
		info.VATRateDetails = parseDetailList(value)
		info.VATRate = nil
	}
}

func setPaymentConditions(info *BillInformation, value string) {
	var list []PaymentCondition
	for _, entry := range strings.Split(value, ";") {
		detail := strings.Split(entry, ":")
		if len(detail) != 2 {
			continue
		}
		discount := decimalValue(detail[0])
		days, err := strconv.Atoi(detail[1])
		if discount != nil && err == nil {
			list = append(list, PaymentCondition{Discount: *discount, Days: days})
		}
	}
	if len(list) != 0 {
		info.PaymentConditions = list
	}
}

func parseDetailList(text string) []RateDetail {
	var list []RateDetail
	for _, entry := range strings.Split(text, ";") {
		details := strings.Split(entry, ":")
		if len(details) != 2 {
			continue
		}
		rate := decimalValue(details[0])
		amount := decimalValue(details[1])
		if rate != nil && amount != nil {
			list = append(list, RateDetail{Rate: *rate, Amount: *amount})
		}
	}
	return list
}

// dateValue parses an S1 date. The specification mandates six digits
// (yyMMdd), but 12-digit (with hour, minute, second) and 10-digit (with
// hour, minute) values have been seen in production and are tolerated.
func dateValue(dateText string) *time.Time {
	var layout string
	switch len(dateText) {
	case 6:
		layout = "060102"
	case 12:
		layout = "060102150405"
	case 10:
		layout = "0601021504"
	default:
		return nil
	}
	t, err := time.Parse(layout, dateText)
	if err != nil {
		return nil
	}
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &date
}

func decimalValue(decimalText string) *decimal.Decimal {
	if decimalText == "" || strings.ContainsAny(decimalText, "eE,") {
		return nil
	}
	d, err := decimal.NewFromString(decimalText)
	if err != nil {
		return nil
	}
	return &d
}

// split splits the text at slash characters, undoing the backslash escaping
// of slashes and backslashes. Escaped sequences are temporarily substituted
// with placeholders outside the QR bill character set.
func split(text string) []string {
	text = strings.ReplaceAll(text, `\\`, "☁")
	text = strings.ReplaceAll(text, `\/`, "★")

	parts := strings.Split(text, "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "★", "/")
		parts[i] = strings.ReplaceAll(p, "☁", `\`)
	}
	return parts
}
