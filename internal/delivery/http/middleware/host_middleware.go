package middleware

import (
	"net"
	"net/http"
	"strings"

	"maareeye-hospital/pkg/response"
)

// HostMiddleware rejects requests whose Host header is not listed.
// An entry of "*" matches anything and an entry starting with "." matches
// the domain and all of its subdomains.
type HostMiddleware struct {
	allowedHosts []string
}

func NewHostMiddleware(allowedHosts []string) *HostMiddleware {
	hosts := make([]string, len(allowedHosts))
	for i, host := range allowedHosts {
		hosts[i] = strings.ToLower(host)
	}
	return &HostMiddleware{allowedHosts: hosts}
}

func (m *HostMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !m.allowed(req.Host) {
			response.BadRequest(w, "Invalid host header")
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (m *HostMiddleware) allowed(hostport string) bool {
	host := strings.ToLower(hostport)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")

	for _, pattern := range m.allowedHosts {
		switch {
		case pattern == "*":
			return true
		case strings.HasPrefix(pattern, "."):
			if host == pattern[1:] || strings.HasSuffix(host, pattern) {
				return true
			}
		case host == pattern:
			return true
		}
	}
	return false
}
