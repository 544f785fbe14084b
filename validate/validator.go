// Package validate checks and cleans QR bill data.
//
// Validation never fails: every field is processed, diagnostics accumulate
// and the returned result carries a cleaned bill with best-effort values
// even when errors were found.
package validate

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diewo77/qrbill/bill"
	"github.com/diewo77/qrbill/charset"
	"github.com/diewo77/qrbill/checksum"
)

var (
	amountMin = decimal.RequireFromString("0.01")
	amountMax = decimal.RequireFromString("999999999.99")
)

// Validate validates the bill and returns the validation messages (if any)
// along with the cleaned bill data.
func Validate(b *bill.Bill) *bill.Result {
	v := &validator{
		in:  b,
		out: &bill.Bill{Version: b.Version, Format: b.Format, DueDate: b.DueDate},
		cs:  b.Format.CharacterSet,
	}
	return v.validateBill()
}

type validator struct {
	in     *bill.Bill
	out    *bill.Bill
	result bill.Result
	cs     charset.CharacterSet
}

func (v *validator) validateBill() *bill.Result {
	v.validateCurrency()
	v.validateAmount()
	isQRIBAN := v.validateAccount()
	v.validateCreditor()
	v.validateReference(isQRIBAN)
	v.validateAdditionalInformation()
	v.validateUltimateCreditor()
	v.validateDebtor()
	v.validateAlternativeSchemes()

	v.result.CleanedBill = v.out
	return &v.result
}

func (v *validator) validateCurrency() {
	currency := strings.TrimSpace(v.in.Currency)
	if !v.validateMandatory(currency, bill.FieldCurrency) {
		return
	}
	currency = strings.ToUpper(currency)
	if currency != "CHF" && currency != "EUR" {
		v.result.AddError(bill.FieldCurrency, bill.KeyCurrencyNotChfOrEur)
		return
	}
	v.out.Currency = currency
}

func (v *validator) validateAmount() {
	if v.in.Amount == nil {
		return
	}
	amount := v.in.Amount.Round(2)
	if amount.LessThan(amountMin) || amount.GreaterThan(amountMax) {
		v.result.AddError(bill.FieldAmount, bill.KeyAmountOutsideValidRange)
		return
	}
	v.out.Amount = &amount
}

func (v *validator) validateAccount() bool {
	account := strings.TrimSpace(v.in.Account)
	if !v.validateMandatory(account, bill.FieldAccount) {
		return false
	}
	account = strings.ToUpper(strings.ReplaceAll(account, " ", ""))
	if !checksum.IsValidIBAN(account) {
		v.result.AddError(bill.FieldAccount, bill.KeyAccountIbanInvalid)
		return false
	}
	if !strings.HasPrefix(account, "CH") && !strings.HasPrefix(account, "LI") {
		v.result.AddError(bill.FieldAccount, bill.KeyAccountIbanNotFromChOrLi)
		return false
	}
	if len(account) != 21 {
		v.result.AddError(bill.FieldAccount, bill.KeyAccountIbanInvalid)
		return false
	}
	v.out.Account = account
	return account[4] == '3' && (account[5] == '0' || account[5] == '1')
}

func (v *validator) validateReference(isQRIBAN bool) {
	reference := strings.ReplaceAll(strings.TrimSpace(v.in.Reference), " ", "")

	if reference == "" {
		if isQRIBAN {
			v.result.AddError(bill.FieldReference, bill.KeyQRRefMissing)
		}
		return
	}

	if strings.HasPrefix(reference, "RF") {
		if isQRIBAN {
			v.result.AddError(bill.FieldReference, bill.KeyCredRefInvalidUseForQRIban)
			return
		}
		if !checksum.IsValidISO11649Reference(reference) {
			v.result.AddError(bill.FieldReference, bill.KeyRefInvalid)
			return
		}
		v.out.Reference = reference
		return
	}

	// QR reference
	if !isQRIBAN {
		v.result.AddError(bill.FieldReference, bill.KeyQRRefInvalidUseForNonQRIban)
		return
	}
	if len(reference) < 27 {
		reference = strings.Repeat("0", 27-len(reference)) + reference
	}
	if !checksum.IsValidQRReference(reference) {
		v.result.AddError(bill.FieldReference, bill.KeyRefInvalid)
		return
	}
	v.out.Reference = reference
}

// validateAdditionalInformation cleans the unstructured message and the bill
// information. Their combined length (plus one separator if both are
// present) may not exceed 140 characters; the unstructured message is
// clipped first.
func (v *validator) validateAdditionalInformation() {
	message := v.cleanedValue(v.in.UnstructuredMessage, bill.FieldUnstructuredMessage, true)
	billInfo := strings.TrimSpace(v.cleanedValue(v.in.BillInformation, bill.FieldBillInformation, false))

	if billInfo != "" && (len(billInfo) < 4 || !strings.HasPrefix(billInfo, "//")) {
		v.result.AddError(bill.FieldBillInformation, bill.KeyBillInfoInvalid)
		billInfo = ""
	}

	combined := func() int {
		n := runeLen(message) + runeLen(billInfo)
		if message != "" && billInfo != "" {
			n++ // separator between the two parts
		}
		return n
	}
	if combined() > 140 {
		keep := 140 - runeLen(billInfo)
		if billInfo != "" {
			keep--
		}
		if keep < 0 {
			keep = 0
		}
		if keep < runeLen(message) {
			message = clipRunes(message, keep)
			v.result.AddWarning(bill.FieldUnstructuredMessage, bill.KeyAdditionalInfoTooLong, "140")
		}
		if combined() > 140 {
			billInfo = clipRunes(billInfo, 140)
			v.result.AddWarning(bill.FieldBillInformation, bill.KeyAdditionalInfoTooLong, "140")
		}
	}

	v.out.UnstructuredMessage = message
	v.out.BillInformation = billInfo
}

func (v *validator) validateCreditor() {
	v.out.Creditor = v.validatePerson(v.in.Creditor, bill.FieldRootCreditor, true)
}

func (v *validator) validateUltimateCreditor() {
	v.out.UltimateCreditor = v.validatePerson(v.in.UltimateCreditor, bill.FieldRootUltimateCreditor, false)
}

func (v *validator) validateDebtor() {
	v.out.Debtor = v.validatePerson(v.in.Debtor, bill.FieldRootDebtor, false)
}

func (v *validator) validateAlternativeSchemes() {
	var schemes []bill.AlternativeScheme
	for _, in := range v.in.AlternativeSchemes {
		scheme := bill.AlternativeScheme{
			Name:        strings.TrimSpace(in.Name),
			Instruction: strings.TrimSpace(in.Instruction),
		}
		if scheme.Name == "" && scheme.Instruction == "" {
			continue
		}
		if len(schemes) == 2 {
			v.result.AddError(bill.FieldAlternativeSchemes, bill.KeyAltSchemeMaxExceeded)
			continue
		}
		schemes = append(schemes, scheme)
	}
	v.out.AlternativeSchemes = schemes
}

func (v *validator) validatePerson(in *bill.Address, fieldRoot string, mandatory bool) *bill.Address {
	out := v.cleanedPerson(in, fieldRoot)
	if out == nil {
		if mandatory {
			for _, sub := range []string{
				bill.SubFieldName, bill.SubFieldPostalCode, bill.SubFieldAddressLine2,
				bill.SubFieldTown, bill.SubFieldCountryCode,
			} {
				v.result.AddError(fieldRoot+sub, bill.KeyFieldValueMissing)
			}
		}
		return nil
	}

	addressType := out.Type()
	if addressType == bill.AddressTypeConflicting {
		v.addConflictErrors(out, fieldRoot)
	}

	out.CountryCode = strings.ToUpper(out.CountryCode)

	v.validateMandatorySub(out.Name, fieldRoot, bill.SubFieldName)
	if addressType == bill.AddressTypeStructured || addressType == bill.AddressTypeUndetermined {
		v.validateMandatorySub(out.PostalCode, fieldRoot, bill.SubFieldPostalCode)
		v.validateMandatorySub(out.Town, fieldRoot, bill.SubFieldTown)
	}
	if addressType == bill.AddressTypeCombinedElements || addressType == bill.AddressTypeUndetermined {
		v.validateMandatorySub(out.AddressLine2, fieldRoot, bill.SubFieldAddressLine2)
	}
	v.validateMandatorySub(out.CountryCode, fieldRoot, bill.SubFieldCountryCode)

	out.Name = v.clippedValue(out.Name, 70, fieldRoot, bill.SubFieldName)
	if addressType == bill.AddressTypeStructured {
		out.Street = v.clippedValue(out.Street, 70, fieldRoot, bill.SubFieldStreet)
		out.HouseNo = v.clippedValue(out.HouseNo, 16, fieldRoot, bill.SubFieldHouseNo)
		out.PostalCode = v.clippedValue(out.PostalCode, 16, fieldRoot, bill.SubFieldPostalCode)
		out.Town = v.clippedValue(out.Town, 35, fieldRoot, bill.SubFieldTown)
	}
	if addressType == bill.AddressTypeCombinedElements {
		out.AddressLine1 = v.clippedValue(out.AddressLine1, 70, fieldRoot, bill.SubFieldAddressLine1)
		out.AddressLine2 = v.clippedValue(out.AddressLine2, 70, fieldRoot, bill.SubFieldAddressLine2)
	}

	if out.CountryCode != "" && !isValidCountryCode(out.CountryCode) {
		v.result.AddError(fieldRoot+bill.SubFieldCountryCode, bill.KeyCountryCodeInvalid)
	}

	return out
}

func (v *validator) addConflictErrors(a *bill.Address, fieldRoot string) {
	fields := []struct {
		value    string
		subfield string
	}{
		{a.AddressLine1, bill.SubFieldAddressLine1},
		{a.AddressLine2, bill.SubFieldAddressLine2},
		{a.Street, bill.SubFieldStreet},
		{a.HouseNo, bill.SubFieldHouseNo},
		{a.PostalCode, bill.SubFieldPostalCode},
		{a.Town, bill.SubFieldTown},
	}
	for _, f := range fields {
		if f.value != "" {
			v.result.AddError(fieldRoot+f.subfield, bill.KeyAddressTypeConflict)
		}
	}
}

// cleanedPerson cleans all text fields of the address. It returns nil if
// the address is effectively empty.
func (v *validator) cleanedPerson(in *bill.Address, fieldRoot string) *bill.Address {
	if in == nil {
		return nil
	}
	out := &bill.Address{
		Name:         v.cleanedSubValue(in.Name, fieldRoot, bill.SubFieldName),
		AddressLine1: v.cleanedSubValue(in.AddressLine1, fieldRoot, bill.SubFieldAddressLine1),
		AddressLine2: v.cleanedSubValue(in.AddressLine2, fieldRoot, bill.SubFieldAddressLine2),
		Street:       v.cleanedSubValue(in.Street, fieldRoot, bill.SubFieldStreet),
		HouseNo:      v.cleanedSubValue(in.HouseNo, fieldRoot, bill.SubFieldHouseNo),
		PostalCode:   v.cleanedSubValue(in.PostalCode, fieldRoot, bill.SubFieldPostalCode),
		Town:         v.cleanedSubValue(in.Town, fieldRoot, bill.SubFieldTown),
		CountryCode:  strings.TrimSpace(in.CountryCode),
	}
	if out.IsEmpty() {
		return nil
	}
	return out
}

func (v *validator) validateMandatory(value, field string) bool {
	if value == "" {
		v.result.AddError(field, bill.KeyFieldValueMissing)
		return false
	}
	return true
}

func (v *validator) validateMandatorySub(value, fieldRoot, subfield string) {
	if value == "" {
		v.result.AddError(fieldRoot+subfield, bill.KeyFieldValueMissing)
	}
}

func (v *validator) clippedValue(value string, maxLength int, fieldRoot, subfield string) string {
	if runeLen(value) > maxLength {
		v.result.AddWarning(fieldRoot+subfield, bill.KeyFieldValueClipped, strconv.Itoa(maxLength))
		return clipRunes(value, maxLength)
	}
	return value
}

func (v *validator) cleanedSubValue(value, fieldRoot, subfield string) string {
	return v.cleanedValue(value, fieldRoot+subfield, true)
}

func (v *validator) cleanedValue(value, field string, trim bool) string {
	var cleaned string
	var modified bool
	if trim {
		cleaned, modified = charset.CleanedAndTrimmedText(value, v.cs)
	} else {
		cleaned, modified = charset.CleanedText(value, v.cs)
	}
	if modified {
		v.result.AddWarning(field, bill.KeyReplacedUnsupportedCharacters)
	}
	return cleaned
}

func isValidCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

func runeLen(s string) int {
	return len([]rune(s))
}

func clipRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
