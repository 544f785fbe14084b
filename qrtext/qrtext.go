// Package qrtext encodes and decodes the text embedded in the Swiss QR code
// (the data structure defined by SIX). The current version 0200 and the
// legacy version 0100 are supported.
package qrtext

import (
	"strings"

	"github.com/diewo77/qrbill/bill"
)

// ValidationError is returned when encoding is aborted or decoding fails.
// It carries the full validation result.
type ValidationError struct {
	Result *bill.Result
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("QR bill data is invalid:")
	for _, m := range e.Result.Messages {
		if m.Severity != bill.Error {
			continue
		}
		sb.WriteString(" field ")
		sb.WriteString(m.Field)
		sb.WriteString(" (")
		sb.WriteString(m.Key)
		sb.WriteString(")")
	}
	return sb.String()
}

func singleError(field, key string) error {
	result := &bill.Result{}
	result.AddError(field, key)
	return &ValidationError{Result: result}
}

// splitLines splits the text at linefeeds, tolerating both a bare linefeed
// and a carriage return plus linefeed as the separator.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
