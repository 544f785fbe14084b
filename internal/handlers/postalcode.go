package handlers

import (
	"net/http"

	"github.com/diewo77/qrbill/httpx"
	"github.com/diewo77/qrbill/internal/models"
	"github.com/diewo77/qrbill/internal/services"
)

// PostalCodeHandler serves postal code suggestions for address entry.
type PostalCodeHandler struct {
	service *services.PostalCodeService
}

func NewPostalCodeHandler(service *services.PostalCodeService) *PostalCodeHandler {
	return &PostalCodeHandler{service: service}
}

// Suggest responds with up to 20 postal code suggestions for the country and
// substring query parameters.
func (h *PostalCodeHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	substring := r.URL.Query().Get("substring")

	suggestions, err := h.service.Suggest(country, substring)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "suggestion_failed", nil)
		return
	}
	if suggestions == nil {
		suggestions = []models.PostalCode{}
	}
	httpx.JSON(w, http.StatusOK, suggestions)
}
