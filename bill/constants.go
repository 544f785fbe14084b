package bill

// Field identifiers used in validation messages. Address subfields are
// dotted paths built from a field root and a subfield suffix.
const (
	FieldQRType     = "qrText"
	FieldVersion    = "version"
	FieldCodingType = "codingType"
	FieldTrailer    = "trailer"

	FieldCurrency            = "currency"
	FieldAmount              = "amount"
	FieldAccount             = "account"
	FieldReference           = "reference"
	FieldUnstructuredMessage = "unstructuredMessage"
	FieldBillInformation     = "billInformation"
	FieldAlternativeSchemes  = "altSchemes"
	FieldDueDate             = "dueDate"

	FieldRootCreditor         = "creditor"
	FieldRootUltimateCreditor = "ultimateCreditor"
	FieldRootDebtor           = "debtor"

	SubFieldName         = ".name"
	SubFieldAddressLine1 = ".addressLine1"
	SubFieldAddressLine2 = ".addressLine2"
	SubFieldStreet       = ".street"
	SubFieldHouseNo      = ".houseNo"
	SubFieldPostalCode   = ".postalCode"
	SubFieldTown         = ".town"
	SubFieldCountryCode  = ".countryCode"
)

// Message keys. The (field, key) pairs are a stable vocabulary consumed by
// user interfaces and translators; do not rename.
const (
	KeyDataStructureInvalid           = "data_structure_invalid"
	KeyVersionUnsupported             = "version_unsupported"
	KeyCodingTypeUnsupported          = "coding_type_unsupported"
	KeyNumberInvalid                  = "number_invalid"
	KeyCurrencyNotChfOrEur            = "currency_not_chf_or_eur"
	KeyAmountOutsideValidRange        = "amount_outside_valid_range"
	KeyAccountIbanNotFromChOrLi       = "account_iban_not_from_ch_or_li"
	KeyAccountIbanInvalid             = "account_iban_invalid"
	KeyRefInvalid                     = "ref_invalid"
	KeyQRRefMissing                   = "qr_ref_missing"
	KeyCredRefInvalidUseForQRIban     = "cred_ref_invalid_use_for_qr_iban"
	KeyQRRefInvalidUseForNonQRIban    = "qr_ref_invalid_use_for_non_qr_iban"
	KeyFieldValueMissing              = "field_value_missing"
	KeyAddressTypeConflict            = "address_type_conflict"
	KeyCountryCodeInvalid             = "country_code_invalid"
	KeyFieldValueClipped              = "field_value_clipped"
	KeyAdditionalInfoTooLong          = "additional_info_too_long"
	KeyReplacedUnsupportedCharacters  = "replaced_unsupported_characters"
	KeyAltSchemeMaxExceeded           = "alt_scheme_max_exceed"
	KeyBillInfoInvalid                = "bill_info_invalid"
)
