package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
)

// RateLimitMiddleware limits each remote address. Requests carrying a valid
// session are keyed by session so several consoles behind one proxy do not
// share a bucket; unverified tokens fall back to the address.
func RateLimitMiddleware(
	limiter *RateLimiter,
	sessions SessionParser,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		key, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			key = r.RemoteAddr
		}
		if token := bearerToken(r); token != "" && sessions != nil {
			if session, err := sessions.Parse(r.Context(), token); err == nil {
				key = "session:" + session.ID
			}
		}

		allowed, retryAfter := limiter.Allow(key)
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			writeError(w, http.StatusTooManyRequests, "Demasiadas solicitudes, intente más tarde")
			return
		}

		next.ServeHTTP(w, r)
	})
}
