package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/printshop/printshop/internal/pricing"
	"github.com/printshop/printshop/internal/services"
)

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req pricing.Request
	if err := decodeBody(w, r, &req); err != nil {
		h.writeBadQuoteRequest(ctx, w, err, "")
		return
	}

	result, err := h.quoteService.Quote(ctx, &req)
	if err != nil {
		h.writeQuoteError(ctx, w, err)
		return
	}

	recordQuoteTotal(ctx, result.Totals.Final)
	h.writeJSON(ctx, w, http.StatusOK, result)
}

func (h *Handlers) QuickQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input services.QuickQuoteInput
	if err := decodeBody(w, r, &input); err != nil {
		h.writeBadQuoteRequest(ctx, w, err, "")
		return
	}

	base := h.quoteService.QuickQuote(ctx, input)
	recordQuoteTotal(ctx, base.BasePrice)
	h.writeJSON(ctx, w, http.StatusOK, base)
}

type verifyRequest struct {
	Request     *pricing.Request `json:"request" validate:"required"`
	ClientTotal *decimal.Decimal `json:"clientTotal" validate:"required"`
}

// VerifyQuote recomputes a price before an order is created.
func (h *Handlers) VerifyQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body verifyRequest
	if err := decodeBody(w, r, &body); err != nil {
		h.writeBadQuoteRequest(ctx, w, err, "")
		return
	}
	if body.ClientTotal.IsNegative() {
		h.writeBadQuoteRequest(ctx, w, errors.New("clientTotal cannot be negative"), "clientTotal")
		return
	}

	verification, err := h.quoteService.VerifyTotal(ctx, body.Request, *body.ClientTotal)
	if errors.Is(err, services.ErrPriceMismatch) {
		recordQuoteRejection(ctx, "price_mismatch")
		recordQuoteTotal(ctx, verification.ServerTotal)
		h.writeJSON(ctx, w, http.StatusConflict, verification)
		return
	}
	if err != nil {
		h.writeQuoteError(ctx, w, err)
		return
	}

	recordQuoteTotal(ctx, verification.ServerTotal)
	h.writeJSON(ctx, w, http.StatusOK, verification)
}

func (h *Handlers) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.quoteService.RefreshCatalog(ctx); err != nil {
		h.loggerFromContext(ctx).Error("failed to refresh catalog", "error", err)
		h.writeError(ctx, w, http.StatusInternalServerError, errorDetail{Code: "refresh_failed", Message: "Catalog refresh failed"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeBadQuoteRequest(ctx context.Context, w http.ResponseWriter, err error, field string) {
	recordQuoteRejection(ctx, "malformed_request")
	h.writeError(ctx, w, http.StatusBadRequest, errorDetail{Code: "bad_request", Message: err.Error(), Field: field})
}

func (h *Handlers) writeQuoteError(ctx context.Context, w http.ResponseWriter, err error) {
	var validationErr *pricing.ValidationError
	if errors.As(err, &validationErr) {
		recordQuoteRejection(ctx, "validation")
		h.writeError(ctx, w, http.StatusUnprocessableEntity, errorDetail{
			Code:        "validation_error",
			Message:     validationErr.Message,
			Field:       validationErr.Field,
			Suggestions: validationErr.Suggestions,
		})
		return
	}

	var lookupErr *pricing.CatalogLookupError
	if errors.As(err, &lookupErr) {
		recordQuoteRejection(ctx, "catalog_lookup")
		h.loggerFromContext(ctx).Info("quote referenced unavailable catalog entry", "kind", lookupErr.Kind, "id", lookupErr.ID)
		h.writeError(ctx, w, http.StatusConflict, errorDetail{Code: "catalog_lookup", Message: lookupErr.UserMessage()})
		return
	}

	if errors.Is(err, services.ErrCatalogUnavailable) {
		recordQuoteRejection(ctx, "catalog_unavailable")
		h.writeError(ctx, w, http.StatusServiceUnavailable, errorDetail{Code: "catalog_unavailable", Message: "Pricing is temporarily unavailable"})
		return
	}

	recordQuoteRejection(ctx, "internal")
	h.loggerFromContext(ctx).Error("quote failed", "error", err)
	h.writeError(ctx, w, http.StatusInternalServerError, errorDetail{Code: "internal_error", Message: "Internal Server Error"})
}
