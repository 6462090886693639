package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/printshop/printshop/internal/config"
	"github.com/printshop/printshop/internal/logging"
	"github.com/printshop/printshop/internal/services"
)

const maxRequestBodyBytes = 1 << 20 // 1 MB

var requestValidator = validator.New()

// Handlers provides the JSON quoting API.
type Handlers struct {
	config       *config.Config
	quoteService *services.QuoteService
	logger       *slog.Logger
}

type Dependencies struct {
	Config       *config.Config
	QuoteService *services.QuoteService
	Logger       *slog.Logger
}

func New(deps Dependencies) (*Handlers, error) {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	if deps.Config == nil {
		return nil, fmt.Errorf("handlers dependencies: config is required")
	}
	if deps.QuoteService == nil {
		return nil, fmt.Errorf("handlers dependencies: quoteService is required")
	}

	return &Handlers{
		config:       deps.Config,
		quoteService: deps.QuoteService,
		logger:       logger.With("component", "handlers"),
	}, nil
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)

	stats, err := h.quoteService.CheckCatalog(ctx)
	if err != nil {
		logger.Error("catalog health check failed", "error", err)
		h.writeJSON(ctx, w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"catalog": stats,
	})
}

func (h *Handlers) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, h.logger)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Field       string   `json:"field,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (h *Handlers) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.loggerFromContext(ctx).Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) writeError(ctx context.Context, w http.ResponseWriter, status int, detail errorDetail) {
	h.writeJSON(ctx, w, status, errorBody{Error: detail})
}

// decodeBody reads a size-limited JSON body into dst and runs its validate tags.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body too large")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := requestValidator.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil
		}
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(r.Context(), w, http.StatusNotFound, errorDetail{Code: "not_found", Message: "Not Found"})
}

func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(r.Context(), w, http.StatusMethodNotAllowed, errorDetail{Code: "method_not_allowed", Message: "Method Not Allowed"})
}
