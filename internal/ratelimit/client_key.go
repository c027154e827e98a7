package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// KeyFunc identifies the client a request is billed to.
type KeyFunc func(r *http.Request) string

// ClientKey bills requests to the API key in header when present, else to the client IP.
// X-Forwarded-For is consulted only when trustProxy is set.
func ClientKey(header string, trustProxy bool) KeyFunc {
	return func(r *http.Request) string {
		if header != "" {
			if key := strings.TrimSpace(r.Header.Get(header)); key != "" {
				return "key:" + key
			}
		}
		return "ip:" + clientIP(r, trustProxy)
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
