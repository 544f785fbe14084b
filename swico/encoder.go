package swico

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Encode encodes the bill information in Swico S1 syntax, omitting absent
// fields. It returns the empty string if no field is set.
//
// The output is canonical: decoding it and encoding the result again yields
// the same text.
func (b *BillInformation) Encode() string {
	var sb strings.Builder

	sb.WriteString("//S1")

	if b.InvoiceNumber != "" {
		sb.WriteString("/10/")
		sb.WriteString(escapedText(b.InvoiceNumber))
	}
	if b.InvoiceDate != nil {
		sb.WriteString("/11/")
		sb.WriteString(s1Date(*b.InvoiceDate))
	}
	if b.CustomerReference != "" {
		sb.WriteString("/20/")
		sb.WriteString(escapedText(b.CustomerReference))
	}
	if b.VATNumber != "" {
		sb.WriteString("/30/")
		sb.WriteString(escapedText(b.VATNumber))
	}

	if b.VATDate != nil {
		sb.WriteString("/31/")
		sb.WriteString(s1Date(*b.VATDate))
	} else if b.VATStartDate != nil && b.VATEndDate != nil {
		sb.WriteString("/31/")
		sb.WriteString(s1Date(*b.VATStartDate))
		sb.WriteString(s1Date(*b.VATEndDate))
	}

	if b.VATRate != nil {
		sb.WriteString("/32/")
		sb.WriteString(s1Number(*b.VATRate))
	} else if len(b.VATRateDetails) != 0 {
		sb.WriteString("/32/")
		writeRateDetails(&sb, b.VATRateDetails)
	}

	if len(b.VATImportTaxes) != 0 {
		sb.WriteString("/33/")
		writeRateDetails(&sb, b.VATImportTaxes)
	}
	if len(b.PaymentConditions) != 0 {
		sb.WriteString("/40/")
		for i, c := range b.PaymentConditions {
			if i != 0 {
				sb.WriteByte(';')
			}
			sb.WriteString(s1Number(c.Discount))
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(c.Days))
		}
	}

	if sb.Len() == 4 {
		return ""
	}
	return sb.String()
}

func writeRateDetails(sb *strings.Builder, list []RateDetail) {
	for i, d := range list {
		if i != 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(s1Number(d.Rate))
		sb.WriteByte(':')
		sb.WriteString(s1Number(d.Amount))
	}
}

func escapedText(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	return strings.ReplaceAll(text, "/", `\/`)
}

func s1Date(date time.Time) string {
	return date.Format("060102")
}

// s1Number formats a number with up to three decimal places and no trailing
// zeros.
func s1Number(num decimal.Decimal) string {
	s := num.Round(3).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
