package handlers

import (
	"context"

	"github.com/shopspring/decimal"
)

// quoteOutcome carries what a quote handler decided back out to RequestLogger,
// which owns the access log line and request metrics.
type quoteOutcome struct {
	rejection string
	total     string
}

type quoteOutcomeKey struct{}

func withQuoteOutcome(ctx context.Context) (context.Context, *quoteOutcome) {
	outcome := &quoteOutcome{}
	return context.WithValue(ctx, quoteOutcomeKey{}, outcome), outcome
}

func quoteOutcomeFromContext(ctx context.Context) *quoteOutcome {
	outcome, _ := ctx.Value(quoteOutcomeKey{}).(*quoteOutcome)
	return outcome
}

func recordQuoteRejection(ctx context.Context, reason string) {
	if outcome := quoteOutcomeFromContext(ctx); outcome != nil {
		outcome.rejection = reason
	}
}

func recordQuoteTotal(ctx context.Context, total decimal.Decimal) {
	if outcome := quoteOutcomeFromContext(ctx); outcome != nil {
		outcome.total = total.StringFixed(2)
	}
}

// logAttrs returns the quote fields for the access log, if a handler set any.
func (o *quoteOutcome) logAttrs() []any {
	if o == nil {
		return nil
	}
	var attrs []any
	if o.rejection != "" {
		attrs = append(attrs, "quote_rejection", o.rejection)
	}
	if o.total != "" {
		attrs = append(attrs, "quote_total", o.total)
	}
	return attrs
}
