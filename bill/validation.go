package bill

// Severity of a validation message.
type Severity int

const (
	// Warning means a field value was modified to comply with the
	// standard. The bill is still valid.
	Warning Severity = iota
	// Error means a field value does not comply with the standard and
	// could not be fixed. The bill is invalid.
	Error
)

// Message describes a single validation finding: what happened (Key), where
// (Field) and how bad it is (Severity). Parameters carry values for message
// formatting, e.g. the clipping length.
type Message struct {
	Severity   Severity
	Field      string
	Key        string
	Parameters []string
}

// Result accumulates validation messages and carries the cleaned bill.
type Result struct {
	Messages []Message

	// CleanedBill is the validated and cleaned bill. It is set even if
	// errors were found; erroneous fields then hold best-effort values.
	CleanedBill *Bill
}

// AddError appends an error message for the given field.
func (r *Result) AddError(field, key string, params ...string) {
	r.Messages = append(r.Messages, Message{Severity: Error, Field: field, Key: key, Parameters: params})
}

// AddWarning appends a warning message for the given field.
func (r *Result) AddWarning(field, key string, params ...string) {
	r.Messages = append(r.Messages, Message{Severity: Warning, Field: field, Key: key, Parameters: params})
}

// HasErrors reports whether the result contains at least one error.
func (r *Result) HasErrors() bool {
	for _, m := range r.Messages {
		if m.Severity == Error {
			return true
		}
	}
	return false
}

// HasWarnings reports whether the result contains at least one warning.
func (r *Result) HasWarnings() bool {
	for _, m := range r.Messages {
		if m.Severity == Warning {
			return true
		}
	}
	return false
}

// HasMessages reports whether the result contains any messages.
func (r *Result) HasMessages() bool {
	return len(r.Messages) > 0
}

// IsValid reports whether validation found no errors.
func (r *Result) IsValid() bool {
	return !r.HasErrors()
}
