package middleware

import (
	"dockhub/shared"
	"dockhub/shared/constant"
	"dockhub/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"

	bucketStaff  = "staff"
	bucketPublic = "public"
)

// publicRoutes are reachable without a token, so they get their own tighter per-IP budget.
var publicRoutes = map[string]struct{}{
	http.MethodPost + " /v1/check-ins":        {},
	http.MethodGet + " /v1/appointments/slots": {},
}

type rateBudget struct {
	bucket        string
	maxRequests   int
	windowSeconds int
}

func (a *appMiddleware) budgetFor(r *http.Request) rateBudget {
	limiter := a.config.App.RateLimiter

	budget := rateBudget{
		bucket:        bucketStaff,
		maxRequests:   limiter.MaxRequests,
		windowSeconds: limiter.WindowSeconds,
	}

	if _, ok := publicRoutes[r.Method+" "+strings.TrimSuffix(r.URL.Path, "/")]; ok && limiter.PublicMaxRequests > 0 {
		budget.bucket = bucketPublic
		budget.maxRequests = limiter.PublicMaxRequests
	}

	return budget
}

// RateLimit counts requests per client in fixed windows. Redis failures let the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)

				return
			}

			budget := a.budgetFor(r)
			clientIP := a.getClientIP(r)

			parts := []string{budget.bucket, clientIP}
			if budget.bucket == bucketStaff {
				parts = append(parts, a.getUA(r))
			}

			count, err := a.cache.Increment(r.Context(), shared.BuildCacheKey(cacheKeyRateLimit, parts...), budget.windowSeconds)
			if err != nil {
				log.Warn().Err(err).Str("client_ip", clientIP).Msg("rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(budget.maxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(budget.maxRequests)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(budget.windowSeconds))

			if count > int64(budget.maxRequests) {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// getClientIP prefers the first proxy hop, then X-Real-IP, then the socket address without its port.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
