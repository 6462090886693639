package handlers

import (
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/getsentry/sentry-go/attribute"

	"github.com/printshop/printshop/internal/observability"
)

// MetricsContext puts a meter into the context that is pre-tagged with the
// request and the catalog source, so service metrics such as quote.calculated
// can be split by API surface and by file or Postgres catalogs.
func (h *Handlers) MetricsContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		attrs := []attribute.Builder{
			attribute.String("http.request_id", requestIDFromRequest(r)),
			attribute.String("http.method", r.Method),
		}
		if route := routeLabel(r); route != "" {
			attrs = append(attrs,
				attribute.String("http.route", route),
				attribute.String("api.surface", apiSurface(route)),
			)
		}
		if h.config != nil && h.config.CatalogSource != "" {
			attrs = append(attrs, attribute.String("catalog.source", h.config.CatalogSource))
		}

		meter := sentry.NewMeter(ctx).WithCtx(ctx)
		meter.SetAttributes(attrs...)

		next.ServeHTTP(w, r.WithContext(observability.WithMeter(ctx, meter)))
	})
}

// apiSurface groups named routes by prefix: "quotes.verify" -> "quotes".
func apiSurface(route string) string {
	surface, _, _ := strings.Cut(route, ".")
	return surface
}
