package qrtext

import (
	"github.com/diewo77/qrbill/bill"
)

// Line count windows of the two data format versions. The windows are
// interoperability constants: real-world producers emit the optional
// trailing sections in every combination, so the full ranges must be
// accepted.
const (
	minLinesV1 = 28
	maxLinesV1 = 30
	minLinesV2 = 31
	maxLinesV2 = 34
)

// Decode decodes the QR code text and returns the bill data.
//
// The returned data is only minimally validated: the structure, the header
// and the trailer are checked, and amount and due date must parse. All
// other fields are taken over as opaque text. Structural violations return
// a *ValidationError with a single error message.
func Decode(text string) (*bill.Bill, error) {
	lines := splitLines(text)

	// A superfluous trailing empty line is a common artifact of historic
	// encoders and is tolerated.
	if n := len(lines); n > minLinesV1 && n <= maxLinesV2+1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	if len(lines) < minLinesV1 || len(lines) > maxLinesV2 {
		return nil, singleError(bill.FieldQRType, bill.KeyDataStructureInvalid)
	}
	if lines[0] != "SPC" {
		return nil, singleError(bill.FieldQRType, bill.KeyDataStructureInvalid)
	}

	switch {
	case lines[1] == "0100":
		if len(lines) > maxLinesV1 {
			return nil, singleError(bill.FieldQRType, bill.KeyDataStructureInvalid)
		}
		return decodeV1(lines)
	case isVersion2(lines[1]):
		if len(lines) < minLinesV2 {
			return nil, singleError(bill.FieldQRType, bill.KeyDataStructureInvalid)
		}
		return decodeV2(lines)
	default:
		return nil, singleError(bill.FieldVersion, bill.KeyVersionUnsupported)
	}
}

// isVersion2 reports whether the version line denotes the 0200 format.
// Minor versions ("0201" etc.) are accepted and decoded like 0200.
func isVersion2(version string) bool {
	if len(version) != 4 || version[0] != '0' || version[1] != '2' {
		return false
	}
	return version[2] >= '0' && version[2] <= '9' && version[3] >= '0' && version[3] <= '9'
}

func decodeV2(lines []string) (*bill.Bill, error) {
	if lines[2] != "1" {
		return nil, singleError(bill.FieldCodingType, bill.KeyCodingTypeUnsupported)
	}
	if lines[30] != "EPD" {
		return nil, singleError(bill.FieldTrailer, bill.KeyDataStructureInvalid)
	}

	b := &bill.Bill{Version: bill.V2_0, Format: bill.DefaultFormat()}

	b.Account = lines[3]
	b.Creditor = decodeAddressV2(lines[4:11], false)
	b.UltimateCreditor = decodeAddressV2(lines[11:18], true)

	if lines[18] != "" {
		amount, ok := parseAmount(lines[18])
		if !ok {
			return nil, singleError(bill.FieldAmount, bill.KeyNumberInvalid)
		}
		b.Amount = amount
	}
	b.Currency = lines[19]

	b.Debtor = decodeAddressV2(lines[20:27], true)

	// line 27 is the reference type; it is derived from the reference
	// instead of being taken over
	b.Reference = lines[28]
	b.UnstructuredMessage = lines[29]

	if len(lines) > 31 {
		b.BillInformation = lines[31]
	}
	for _, line := range lines[min(len(lines), 32):] {
		b.AlternativeSchemes = append(b.AlternativeSchemes, bill.AlternativeScheme{Instruction: line})
	}

	return b, nil
}

func decodeV1(lines []string) (*bill.Bill, error) {
	if lines[2] != "1" {
		return nil, singleError(bill.FieldCodingType, bill.KeyCodingTypeUnsupported)
	}

	b := &bill.Bill{Version: bill.V1_0, Format: bill.DefaultFormat()}

	b.Account = lines[3]
	b.Creditor = decodeAddressV1(lines[4:10], false)
	b.UltimateCreditor = decodeAddressV1(lines[10:16], true)

	if lines[16] != "" {
		amount, ok := parseAmount(lines[16])
		if !ok {
			return nil, singleError(bill.FieldAmount, bill.KeyNumberInvalid)
		}
		b.Amount = amount
	}
	b.Currency = lines[17]

	if lines[18] != "" {
		date, ok := parseDate(lines[18])
		if !ok {
			return nil, singleError(bill.FieldDueDate, bill.KeyNumberInvalid)
		}
		b.DueDate = date
	}

	b.Debtor = decodeAddressV1(lines[19:25], true)

	// line 25 is the reference type; it is derived from the reference
	b.Reference = lines[26]
	b.UnstructuredMessage = lines[27]

	for _, line := range lines[min(len(lines), 28):] {
		b.AlternativeSchemes = append(b.AlternativeSchemes, bill.AlternativeScheme{Instruction: line})
	}

	return b, nil
}

// decodeAddressV2 decodes a seven-line address block with a leading address
// type marker. An entirely empty optional block decodes to no address.
func decodeAddressV2(block []string, optional bool) *bill.Address {
	if optional && isBlankBlock(block) {
		return nil
	}

	a := &bill.Address{
		Name:        block[1],
		PostalCode:  block[4],
		Town:        block[5],
		CountryCode: block[6],
	}
	if block[0] == "S" {
		a.Street = block[2]
		a.HouseNo = block[3]
	} else {
		a.AddressLine1 = block[2]
		a.AddressLine2 = block[3]
	}
	return a
}

// decodeAddressV1 decodes a six-line address block of the legacy format;
// the legacy format only knows the structured addressing style.
func decodeAddressV1(block []string, optional bool) *bill.Address {
	if optional && isBlankBlock(block) {
		return nil
	}
	return &bill.Address{
		Name:        block[0],
		Street:      block[1],
		HouseNo:     block[2],
		PostalCode:  block[3],
		Town:        block[4],
		CountryCode: block[5],
	}
}

func isBlankBlock(block []string) bool {
	for _, line := range block {
		if line != "" {
			return false
		}
	}
	return true
}
