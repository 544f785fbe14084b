package qrtext

import (
	"strings"

	"github.com/diewo77/qrbill/bill"
	"github.com/diewo77/qrbill/validate"
)

// Encode validates the bill and encodes the cleaned data into the QR code
// text. If validation finds any error, encoding is aborted and a
// *ValidationError carrying all messages is returned. Warnings do not block
// encoding.
func Encode(b *bill.Bill) (string, error) {
	result := validate.Validate(b)
	if result.HasErrors() {
		return "", &ValidationError{Result: result}
	}
	return EncodeCleaned(result.CleanedBill), nil
}

// EncodeCleaned encodes already validated bill data into the QR code text
// without validating it again. Lines are joined with CR+LF; optional
// trailing sections are omitted entirely rather than emitted as empty lines.
func EncodeCleaned(b *bill.Bill) string {
	if b.Version == bill.V1_0 {
		return encodeV1(b)
	}
	return encodeV2(b)
}

func encodeV2(b *bill.Bill) string {
	lines := make([]string, 0, 34)

	// header
	lines = append(lines, "SPC", "0200", "1")

	// CdtrInf
	lines = append(lines, b.Account)
	lines = appendAddressV2(lines, b.Creditor)

	// UltmtCdtr: must not be filled in yet
	lines = append(lines, "", "", "", "", "", "", "")

	// CcyAmt
	lines = append(lines, formattedAmount(b.Amount), b.Currency)

	// UltmtDbtr
	lines = appendAddressV2(lines, b.Debtor)

	// RmtInf
	lines = append(lines, b.ReferenceType(), b.Reference)

	// AddInf
	lines = append(lines, b.UnstructuredMessage, "EPD")
	if b.BillInformation != "" || len(b.AlternativeSchemes) > 0 {
		lines = append(lines, b.BillInformation)
	}

	// AltPmtInf
	for i, scheme := range b.AlternativeSchemes {
		if i == 2 {
			break
		}
		lines = append(lines, scheme.Instruction)
	}

	return strings.Join(lines, "\r\n")
}

// appendAddressV2 appends the address type marker and the six address lines,
// or seven empty lines if the address is absent.
func appendAddressV2(lines []string, a *bill.Address) []string {
	if a.IsEmpty() {
		return append(lines, "", "", "", "", "", "", "")
	}
	if a.Type() == bill.AddressTypeStructured {
		return append(lines, "S", a.Name, a.Street, a.HouseNo, a.PostalCode, a.Town, a.CountryCode)
	}
	return append(lines, "K", a.Name, a.AddressLine1, a.AddressLine2, a.PostalCode, a.Town, a.CountryCode)
}

// encodeV1 encodes the legacy 0100 layout: no address type markers,
// six-line address blocks, the ultimate creditor block in use and a due
// date line between currency and debtor.
func encodeV1(b *bill.Bill) string {
	lines := make([]string, 0, 30)

	lines = append(lines, "SPC", "0100", "1")

	lines = append(lines, b.Account)
	lines = appendAddressV1(lines, b.Creditor)
	lines = appendAddressV1(lines, b.UltimateCreditor)

	lines = append(lines, formattedAmount(b.Amount), b.Currency, formattedDate(b.DueDate))

	lines = appendAddressV1(lines, b.Debtor)

	lines = append(lines, b.ReferenceType(), b.Reference, b.UnstructuredMessage)

	for i, scheme := range b.AlternativeSchemes {
		if i == 2 {
			break
		}
		lines = append(lines, scheme.Instruction)
	}

	return strings.Join(lines, "\r\n")
}

func appendAddressV1(lines []string, a *bill.Address) []string {
	if a.IsEmpty() {
		return append(lines, "", "", "", "", "", "")
	}
	street, houseNo := a.Street, a.HouseNo
	if a.Type() == bill.AddressTypeCombinedElements {
		street, houseNo = a.AddressLine1, a.AddressLine2
	}
	return append(lines, a.Name, street, houseNo, a.PostalCode, a.Town, a.CountryCode)
}
