package handlers

import (
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/getsentry/sentry-go/attribute"

	"github.com/printshop/printshop/internal/observability"
)

// SecurityHeaders sets the headers every JSON response carries. Quotes are
// customer specific, so nothing may be cached or framed.
func (h *Handlers) SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := w.Header()
		headers.Set("X-Content-Type-Options", "nosniff")
		headers.Set("X-Frame-Options", "DENY")
		headers.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		headers.Set("Cross-Origin-Resource-Policy", "same-origin")
		headers.Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}

// RequireSameOrigin guards catalog administration. A POST must name this
// service, or BASE_URL, in its Origin or Referer header.
func (h *Handlers) RequireSameOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requestMutatesState(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		meter := observability.MeterFromContext(ctx)
		meter.Count("security.same_origin.checked", 1)

		if reason := h.crossOriginReason(r); reason != "" {
			meter.Count("security.same_origin.blocked", 1, sentry.WithAttributes(attribute.String("reason", reason)))
			h.loggerFromContext(ctx).Warn("blocked cross-origin catalog request",
				"reason", reason,
				"origin", r.Header.Get("Origin"),
				"referer", r.Header.Get("Referer"),
			)
			h.writeError(ctx, w, http.StatusForbidden, errorDetail{Code: "forbidden", Message: "Forbidden"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// crossOriginReason returns why r is not same-origin, or "" when it is.
// Every header that is present has to match.
func (h *Handlers) crossOriginReason(r *http.Request) string {
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	referer := strings.TrimSpace(r.Header.Get("Referer"))
	if origin == "" && referer == "" {
		return "missing_origin_and_referer"
	}

	allowed := h.allowedHosts(r)
	for _, check := range []struct{ value, reason string }{
		{origin, "invalid_origin"},
		{referer, "invalid_referer"},
	} {
		if check.value == "" {
			continue
		}
		if _, ok := allowed[urlHost(check.value)]; !ok {
			return check.reason
		}
	}
	return ""
}

func (h *Handlers) allowedHosts(r *http.Request) map[string]struct{} {
	hosts := map[string]struct{}{}
	if host := requestHost(r.Host); host != "" {
		hosts[host] = struct{}{}
	}
	if h.config != nil {
		if host := urlHost(h.config.BaseURL); host != "" {
			hosts[host] = struct{}{}
		}
	}
	return hosts
}

func requestMutatesState(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func requestHost(hostport string) string {
	hostport = strings.TrimSpace(hostport)
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		hostport = host
	}
	return strings.ToLower(hostport)
}

// urlHost returns the lowercased hostname of rawURL, or "" if it has none.
func urlHost(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}
