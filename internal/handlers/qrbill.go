// Package handlers implements the HTTP endpoints of the QR bill service.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diewo77/qrbill/bill"
	"github.com/diewo77/qrbill/httpx"
	"github.com/diewo77/qrbill/i18n"
	"github.com/diewo77/qrbill/qrtext"
	"github.com/diewo77/qrbill/validate"
)

// BillHandler serves the validate and decode endpoints.
type BillHandler struct{}

func NewBillHandler() *BillHandler {
	return &BillHandler{}
}

// Validate validates bill data and responds with the cleaned bill, the
// localized validation messages and, if the bill is valid, the QR code text
// and a bill ID.
func (h *BillHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var dto BillDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	b, err := billFromDTO(&dto)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_bill", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, h.validationResponse(r, validate.Validate(b)))
}

type decodeRequest struct {
	Text string `json:"text"`
}

// Decode decodes the text embedded in a QR code and validates the bill data.
// Structural decoding failures are reported in the same response shape as
// validation errors.
func (h *BillHandler) Decode(w http.ResponseWriter, r *http.Request) {
	var req decodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Text == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_text", nil)
		return
	}

	var result *bill.Result
	decoded, err := qrtext.Decode(req.Text)
	if err != nil {
		var verr *qrtext.ValidationError
		if !errors.As(err, &verr) {
			httpx.JSONError(w, http.StatusBadRequest, "decode_failed", err.Error())
			return
		}
		result = verr.Result
	} else {
		result = validate.Validate(decoded)
	}
	httpx.JSON(w, http.StatusOK, h.validationResponse(r, result))
}

// FromID reconstructs the bill embedded in a bill ID and responds like the
// validate endpoint.
func (h *BillHandler) FromID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("billID")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_bill_id", nil)
		return
	}
	b, err := decodeBillID(id)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_bill_id", "validate bill data to get a valid ID")
		return
	}
	httpx.JSON(w, http.StatusOK, h.validationResponse(r, validate.Validate(b)))
}

func (h *BillHandler) validationResponse(r *http.Request, result *bill.Result) ValidationResponse {
	lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))

	resp := ValidationResponse{Valid: result.IsValid()}
	for _, m := range result.Messages {
		msgType := "error"
		if m.Severity == bill.Warning {
			msgType = "warning"
		}
		resp.ValidationMessages = append(resp.ValidationMessages, ValidationMessageDTO{
			Type:              msgType,
			Field:             m.Field,
			MessageKey:        m.Key,
			MessageParameters: m.Parameters,
			Message:           i18n.Localize(lang, m.Key, m.Parameters),
		})
	}
	resp.ValidatedBill = billToDTO(result.CleanedBill)

	if result.CleanedBill != nil && !result.HasErrors() {
		text := qrtext.EncodeCleaned(result.CleanedBill)
		resp.QRCodeText = text
		resp.BillID = generateBillID(text, result.CleanedBill.Format)
	}
	return resp
}
