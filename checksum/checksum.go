// Package checksum validates and creates the account and reference numbers
// used in Swiss payments: IBANs and QR-IBANs, ISO 11649 creditor references
// and QR references (the former ISR reference format).
package checksum

import (
	"errors"
	"strings"
)

// IsValidIBAN reports whether iban is a valid IBAN: valid characters, a
// two-letter country code, valid check digits and a valid modulo 97 checksum.
// Space characters are ignored.
func IsValidIBAN(iban string) bool {
	iban = withoutSpaces(iban)

	if len(iban) < 5 {
		return false
	}
	if !isAlphaNumeric(iban) {
		return false
	}
	if !isLetter(iban[0]) || !isLetter(iban[1]) {
		return false
	}
	if !isDigit(iban[2]) || !isDigit(iban[3]) {
		return false
	}
	switch iban[2:4] {
	case "00", "01", "99":
		return false
	}
	m, err := mod97(iban)
	return err == nil && m == 1
}

// IsQRIBAN reports whether iban is a valid QR-IBAN: an IBAN for Switzerland
// or Liechtenstein with an institution ID in the range 30000 to 31999.
func IsQRIBAN(iban string) bool {
	iban = strings.ToUpper(withoutSpaces(iban))
	if !IsValidIBAN(iban) {
		return false
	}
	if !strings.HasPrefix(iban, "CH") && !strings.HasPrefix(iban, "LI") {
		return false
	}
	return iban[4] == '3' && (iban[5] == '0' || iban[5] == '1')
}

// FormatIBAN formats an IBAN or creditor reference in groups of four
// characters separated by spaces. An incomplete group goes at the end.
func FormatIBAN(iban string) string {
	var sb strings.Builder
	for pos := 0; pos < len(iban); pos += 4 {
		end := pos + 4
		if end > len(iban) {
			end = len(iban)
		}
		if pos != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(iban[pos:end])
	}
	return sb.String()
}

// IsValidISO11649Reference reports whether reference is a valid ISO 11649
// creditor reference ("RF" prefix, 5 to 25 characters, valid modulo 97
// checksum). Space characters are ignored.
func IsValidISO11649Reference(reference string) bool {
	reference = withoutSpaces(reference)

	if len(reference) < 5 || len(reference) > 25 {
		return false
	}
	if !isAlphaNumeric(reference) {
		return false
	}
	if reference[0] != 'R' || reference[1] != 'F' {
		return false
	}
	if !isDigit(reference[2]) || !isDigit(reference[3]) {
		return false
	}
	m, err := mod97(reference)
	return err == nil && m == 1
}

// CreateISO11649Reference creates an ISO 11649 creditor reference by
// prefixing rawReference with "RF" and the modulo 97 check digits. Space
// characters are removed first. rawReference must be alphanumeric and
// between 1 and 21 characters long.
func CreateISO11649Reference(rawReference string) (string, error) {
	raw := withoutSpaces(rawReference)
	if raw == "" || !isAlphaNumeric(raw) {
		return "", errors.New("invalid character in reference (alphanumeric allowed only)")
	}
	if len(raw) > 21 {
		return "", errors.New("reference is too long")
	}
	m, err := mod97("RF00" + raw)
	if err != nil {
		return "", err
	}
	checkDigits := 98 - m
	return "RF" + string([]byte{byte('0' + checkDigits/10), byte('0' + checkDigits%10)}) + raw, nil
}

// IsValidQRReference reports whether reference is a valid QR reference:
// 27 digits with a valid modulo 10 check digit. The all-zero reference is
// not valid. Space characters are ignored.
func IsValidQRReference(reference string) bool {
	reference = withoutSpaces(reference)

	if !isNumeric(reference) {
		return false
	}
	if len(reference) != 27 {
		return false
	}
	if strings.Count(reference, "0") == 27 {
		return false
	}
	return mod10(reference) == 0
}

// CreateQRReference creates a QR reference from a raw digit string by
// padding it with leading zeros to 26 digits and appending the modulo 10
// check digit. Space characters are removed first.
func CreateQRReference(rawReference string) (string, error) {
	raw := withoutSpaces(rawReference)
	if !isNumeric(raw) {
		return "", errors.New("invalid character in reference (digits allowed only)")
	}
	if len(raw) > 26 {
		return "", errors.New("reference number is too long")
	}
	carry := mod10(raw)
	checkDigit := (10 - carry) % 10
	return strings.Repeat("0", 26-len(raw)) + raw + string(byte('0'+checkDigit)), nil
}

// FormatQRReference formats a QR reference in groups of five digits
// separated by spaces. An incomplete group goes at the start.
func FormatQRReference(reference string) string {
	var sb strings.Builder
	t := 0
	for t < len(reference) {
		n := t + (len(reference)-t-1)%5 + 1
		if t != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(reference[t:n])
		t = n
	}
	return sb.String()
}

// mod97 calculates the modulo 97 checksum used by the IBAN and ISO 11649
// standards. The first four characters are moved to the end, digits keep
// their value and letters are mapped to 10 to 35.
func mod97(reference string) (int, error) {
	if len(reference) < 5 {
		return 0, errors.New("insufficient characters for checksum calculation")
	}

	rearranged := reference[4:] + reference[:4]
	sum := 0
	for i := 0; i < len(rearranged); i++ {
		ch := rearranged[i]
		switch {
		case ch >= '0' && ch <= '9':
			sum = sum*10 + int(ch-'0')
		case ch >= 'A' && ch <= 'Z':
			sum = sum*100 + int(ch-'A') + 10
		case ch >= 'a' && ch <= 'z':
			sum = sum*100 + int(ch-'a') + 10
		default:
			return 0, errors.New("invalid character in reference: " + string(ch))
		}
		if sum > 9999999 {
			sum = sum % 97
		}
	}
	return sum % 97, nil
}

var mod10Table = [10]int{0, 9, 4, 6, 8, 2, 7, 1, 3, 5}

// mod10 runs the recursive ISR checksum over a digit string and returns the
// final carry. A reference with a correct check digit yields 0.
func mod10(reference string) int {
	carry := 0
	for i := 0; i < len(reference); i++ {
		digit := int(reference[i] - '0')
		carry = mod10Table[(carry+digit)%10]
	}
	return carry
}

func withoutSpaces(value string) string {
	return strings.ReplaceAll(value, " ", "")
}

func isNumeric(value string) bool {
	for i := 0; i < len(value); i++ {
		if !isDigit(value[i]) {
			return false
		}
	}
	return true
}

func isAlphaNumeric(value string) bool {
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if !isDigit(ch) && !isLetter(ch) {
			return false
		}
	}
	return true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}
