package bill

// AddressType classifies how an address is specified.
type AddressType int

const (
	// AddressTypeUndetermined means no addressing field is set.
	AddressTypeUndetermined AddressType = iota
	// AddressTypeStructured means street, house number, postal code and
	// town are given as separate fields.
	AddressTypeStructured
	// AddressTypeCombinedElements means the address is given as two
	// free-form lines.
	AddressTypeCombinedElements
	// AddressTypeConflicting means fields of both styles are set.
	AddressTypeConflicting
)

// Address of a creditor, ultimate creditor or debtor.
//
// The postal address can be specified in two mutually exclusive styles:
// structured (street, house number, postal code, town) or combined elements
// (two free-form address lines). Empty strings mean absent fields.
type Address struct {
	Name string

	AddressLine1 string
	AddressLine2 string

	Street     string
	HouseNo    string
	PostalCode string
	Town       string

	// CountryCode is the two-letter ISO 3166-1 country code.
	CountryCode string
}

// Type derives the addressing style from the fields that are set.
func (a *Address) Type() AddressType {
	structured := a.Street != "" || a.HouseNo != "" || a.PostalCode != "" || a.Town != ""
	combined := a.AddressLine1 != "" || a.AddressLine2 != ""
	switch {
	case structured && combined:
		return AddressTypeConflicting
	case structured:
		return AddressTypeStructured
	case combined:
		return AddressTypeCombinedElements
	default:
		return AddressTypeUndetermined
	}
}

// IsEmpty reports whether all fields are absent. An empty address is treated
// as "no address" by validation.
func (a *Address) IsEmpty() bool {
	return a == nil || *a == Address{}
}

// Equal reports whether two addresses have the same field values. A nil
// address equals an empty one.
func (a *Address) Equal(other *Address) bool {
	if a.IsEmpty() || other.IsEmpty() {
		return a.IsEmpty() == other.IsEmpty()
	}
	return *a == *other
}
