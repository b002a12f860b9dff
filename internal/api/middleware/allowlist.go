package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// originIPKey is where the resolved client address is stored for handlers.
const originIPKey = "origin_ip"

// IPAllowlist resolves the originating address and, when an allow-list
// is configured, rejects requests from anywhere else. An empty list
// disables the restriction entirely, an explicit permissive default
// for environments without a known fixed egress address.
func IPAllowlist(allowed []string) echo.MiddlewareFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, ip := range allowed {
		if ip = strings.TrimSpace(ip); ip != "" {
			allowedSet[ip] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := clientIP(c)
			c.Set(originIPKey, ip)

			if len(allowedSet) == 0 {
				return next(c)
			}
			if _, ok := allowedSet[ip]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access denied from outside the authorized environment")
			}
			return next(c)
		}
	}
}

// OriginIP returns the client address resolved by IPAllowlist, empty
// when the middleware did not run.
func OriginIP(c echo.Context) string {
	ip, _ := c.Get(originIPKey).(string)
	return ip
}

// clientIP prefers the first X-Forwarded-For entry, which carries the
// real address behind cloud proxies, and falls back to the peer address.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		return c.Request().RemoteAddr
	}
	return host
}
