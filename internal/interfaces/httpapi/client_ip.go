package httpapi

import (
	"net/http"
	"net/netip"
	"strings"
)

// Proxy headers in order of trust. Only the first hop of X-Forwarded-For is used.
var clientIPHeaders = []string{"Fly-Client-IP", "CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

func clientIP(r *http.Request) string {
	for _, name := range clientIPHeaders {
		first, _, _ := strings.Cut(r.Header.Get(name), ",")
		if addr, ok := parseClientAddr(first); ok {
			return addr.String()
		}
	}
	if addr, ok := parseClientAddr(r.RemoteAddr); ok {
		return addr.String()
	}
	return ""
}

func parseClientAddr(raw string) (netip.Addr, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return netip.Addr{}, false
	}
	if ap, err := netip.ParseAddrPort(raw); err == nil {
		return ap.Addr().Unmap(), true
	}
	addr, err := netip.ParseAddr(strings.Trim(raw, "[]"))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
