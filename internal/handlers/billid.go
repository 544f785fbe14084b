package handlers

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/diewo77/qrbill/bill"
	"github.com/diewo77/qrbill/qrtext"
)

// billPayload is the data embedded in a bill ID.
type billPayload struct {
	Version int        `json:"version"`
	Format  *FormatDTO `json:"format"`
	QRText  string     `json:"qrText"`
}

// generateBillID encodes the whole bill into a URL safe ID: the deflated
// JSON payload in URL safe base64, with "=" replaced by "~".
func generateBillID(qrCodeText string, format bill.Format) string {
	payload := billPayload{Version: 1, Format: formatToDTO(format), QRText: qrCodeText}

	var buf bytes.Buffer
	b64 := base64.NewEncoder(base64.URLEncoding, &buf)
	zw := zlib.NewWriter(b64)
	// writes to an in-memory buffer cannot fail
	_ = json.NewEncoder(zw).Encode(payload)
	_ = zw.Close()
	_ = b64.Close()

	return strings.ReplaceAll(buf.String(), "=", "~")
}

// decodeBillID decodes a bill ID generated by generateBillID back into the
// bill data it embeds.
func decodeBillID(id string) (*bill.Bill, error) {
	id = strings.ReplaceAll(id, "~", "=")

	zr, err := zlib.NewReader(base64.NewDecoder(base64.URLEncoding, strings.NewReader(id)))
	if err != nil {
		return nil, fmt.Errorf("invalid bill ID: %w", err)
	}
	defer zr.Close()

	var payload billPayload
	if err := json.NewDecoder(zr).Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid bill ID: %w", err)
	}

	b, err := qrtext.Decode(payload.QRText)
	if err != nil {
		return nil, fmt.Errorf("invalid bill ID: %w", err)
	}
	format, err := formatFromDTO(payload.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid bill ID: %w", err)
	}
	b.Format = format
	return b, nil
}
