package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/getsentry/sentry-go/attribute"
	"github.com/shopspring/decimal"

	"github.com/printshop/printshop/internal/logging"
	"github.com/printshop/printshop/internal/observability"
	"github.com/printshop/printshop/internal/pricing"
)

var (
	ErrPriceMismatch      = errors.New("client total does not match server price")
	ErrCatalogNotCached   = errors.New("catalog source has no cache to refresh")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

type catalogSource interface {
	Load(ctx context.Context) (*pricing.Catalog, error)
}

type catalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

type cacheChecker interface {
	CheckCache(ctx context.Context) error
}

type priceCalculator interface {
	CalculatePrice(req *pricing.Request, catalog *pricing.Catalog) (*pricing.Result, error)
}

// QuoteService is the only path from an HTTP request to the pricing engine.
// Totals coming from clients are never trusted, only re-verified.
type QuoteService struct {
	catalog   catalogSource
	engine    priceCalculator
	tolerance decimal.Decimal
	logger    *slog.Logger
}

func NewQuoteService(catalog catalogSource, engine priceCalculator, toleranceDollars float64, logger *slog.Logger) (*QuoteService, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog source is required")
	}
	if engine == nil {
		engine = pricing.NewEngine()
	}
	if toleranceDollars < 0 {
		return nil, fmt.Errorf("tolerance must be zero or positive")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &QuoteService{
		catalog:   catalog,
		engine:    engine,
		tolerance: decimal.NewFromFloat(toleranceDollars),
		logger:    logger,
	}, nil
}

func (s *QuoteService) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, s.logger)
}

// Quote loads the current catalog snapshot and prices req against it.
func (s *QuoteService) Quote(ctx context.Context, req *pricing.Request) (*pricing.Result, error) {
	span := sentry.StartSpan(
		ctx,
		"service.quote.calculate",
		sentry.WithOpName("service.quote"),
		sentry.WithDescription("Quote"),
		sentry.WithSpanOrigin(sentry.SpanOriginManual),
	)
	defer span.Finish()
	ctx = span.Context()

	result, err := s.quote(ctx, req)
	if err != nil {
		span.Status = sentry.SpanStatusInvalidArgument
		if errors.Is(err, ErrCatalogUnavailable) {
			span.Status = sentry.SpanStatusUnavailable
		}
		return nil, err
	}
	span.Status = sentry.SpanStatusOK
	return result, nil
}

func (s *QuoteService) quote(ctx context.Context, req *pricing.Request) (*pricing.Result, error) {
	logger := s.loggerFromContext(ctx)

	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		observability.Count(ctx, "quote.rejected", attribute.String("reason", "catalog_unavailable"))
		logger.Error("failed to load catalog snapshot", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	result, err := s.engine.CalculatePrice(req, catalog)
	if err != nil {
		reason := rejectionReason(err)
		observability.Count(ctx, "quote.rejected", attribute.String("reason", reason))
		if reason == "internal" || reason == "unsupported_pricing_model" {
			logger.Error("price calculation failed", "error", err)
		} else {
			logger.Info("quote rejected", "reason", reason, "error", err)
		}
		return nil, err
	}

	attrs := []attribute.Builder{
		attribute.String("turnaround", req.TurnaroundID),
		attribute.Bool("broker", req.IsBroker),
		attribute.String("size_selection", string(req.SizeSelection)),
	}
	observability.Count(ctx, "quote.calculated", attrs...)
	observability.Observe(ctx, "quote.final_total", result.Totals.Final.InexactFloat64(), attrs...)
	logger.Debug("quote calculated",
		"final", result.Totals.Final.StringFixed(2),
		"addons", len(result.Addons),
		"broker_discount", result.Adjustments.BrokerDiscount.Applied,
	)

	return result, nil
}

type QuickQuoteInput struct {
	PricePerSqInch   float64 `json:"pricePerSqInch" validate:"gte=0"`
	Size             float64 `json:"size" validate:"gte=0"`
	Quantity         float64 `json:"quantity" validate:"gte=0"`
	IsDoubleSided    bool    `json:"isDoubleSided"`
	IsExceptionPaper bool    `json:"isExceptionPaper"`
}

// QuickQuote runs only the base price formula, without a catalog.
func (s *QuoteService) QuickQuote(ctx context.Context, input QuickQuoteInput) pricing.BaseCalculation {
	observability.Count(ctx, "quote.quick_calculated", attribute.Bool("double_sided", input.IsDoubleSided))
	return pricing.QuickCalculate(input.PricePerSqInch, input.Size, input.Quantity, input.IsDoubleSided, input.IsExceptionPaper)
}

type VerifyResult struct {
	Valid       bool            `json:"valid"`
	ServerTotal decimal.Decimal `json:"serverTotal"`
	ClientTotal decimal.Decimal `json:"clientTotal"`
	Difference  decimal.Decimal `json:"difference"`
}

// VerifyTotal recomputes the price for req and compares it with the total the
// client displayed. On a mismatch it returns the comparison and ErrPriceMismatch.
func (s *QuoteService) VerifyTotal(ctx context.Context, req *pricing.Request, clientTotal decimal.Decimal) (*VerifyResult, error) {
	result, err := s.Quote(ctx, req)
	if err != nil {
		return nil, err
	}

	// Clients display cents, so compare against the rounded total.
	server := result.Totals.Final.Round(2)
	diff := server.Sub(clientTotal).Abs()
	verification := &VerifyResult{
		Valid:       diff.LessThanOrEqual(s.tolerance),
		ServerTotal: server,
		ClientTotal: clientTotal,
		Difference:  diff,
	}

	if !verification.Valid {
		observability.Count(ctx, "quote.verify.mismatch")
		s.loggerFromContext(ctx).Warn("client total does not match server price",
			"client_total", clientTotal.StringFixed(2),
			"server_total", server.StringFixed(2),
		)
		return verification, fmt.Errorf("%w: client %s, server %s", ErrPriceMismatch,
			pricing.FormatUSD(clientTotal), pricing.FormatUSD(server))
	}

	observability.Count(ctx, "quote.verify.matched")
	return verification, nil
}

// RefreshCatalog drops the cached snapshot so the next quote reloads it.
func (s *QuoteService) RefreshCatalog(ctx context.Context) error {
	invalidator, ok := s.catalog.(catalogInvalidator)
	if !ok {
		return ErrCatalogNotCached
	}
	if err := invalidator.Invalidate(ctx); err != nil {
		return err
	}
	observability.Count(ctx, "catalog.refreshed")
	s.loggerFromContext(ctx).Info("catalog snapshot invalidated")
	return nil
}

// CheckCatalog loads the snapshot and reports its size and cache state, for health checks.
func (s *QuoteService) CheckCatalog(ctx context.Context) (map[string]string, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	stats := map[string]string{
		"sizes":        strconv.Itoa(len(catalog.Sizes)),
		"quantities":   strconv.Itoa(len(catalog.Quantities)),
		"paper_stocks": strconv.Itoa(len(catalog.PaperStocks)),
		"turnarounds":  strconv.Itoa(len(catalog.Turnarounds)),
		"addons":       strconv.Itoa(len(catalog.Addons)),
	}

	// An unreachable cache degrades to direct loads, so it is reported, not fatal.
	if checker, ok := s.catalog.(cacheChecker); ok {
		stats["cache"] = "ok"
		if err := checker.CheckCache(ctx); err != nil {
			stats["cache"] = "unreachable"
			s.loggerFromContext(ctx).Warn("catalog cache unreachable", "error", err)
		}
	}
	return stats, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, pricing.ErrValidation):
		return "validation"
	case errors.Is(err, pricing.ErrCatalogLookup):
		return "catalog_lookup"
	case errors.Is(err, pricing.ErrUnsupportedPricingModel):
		return "unsupported_pricing_model"
	default:
		return "internal"
	}
}
