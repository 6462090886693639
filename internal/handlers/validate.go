package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/printshop/printshop/internal/pricing"
)

// ValidateSize backs live form feedback for custom dimensions.
func (h *Handlers) ValidateSize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	width, err := strconv.ParseFloat(query.Get("width"), 64)
	if err != nil || math.IsNaN(width) || math.IsInf(width, 0) {
		h.writeError(ctx, w, http.StatusBadRequest, errorDetail{Code: "bad_request", Message: "width must be a number", Field: "width"})
		return
	}
	height, err := strconv.ParseFloat(query.Get("height"), 64)
	if err != nil || math.IsNaN(height) || math.IsInf(height, 0) {
		h.writeError(ctx, w, http.StatusBadRequest, errorDetail{Code: "bad_request", Message: "height must be a number", Field: "height"})
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, pricing.ValidateCustomSize(width, height))
}

func (h *Handlers) ValidateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	qty, err := strconv.Atoi(r.URL.Query().Get("qty"))
	if err != nil || qty < 0 {
		h.writeError(ctx, w, http.StatusBadRequest, errorDetail{Code: "bad_request", Message: "qty must be a non-negative integer", Field: "qty"})
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, pricing.ValidateCustomQuantity(qty))
}
