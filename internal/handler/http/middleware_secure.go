package http

import (
	"net/http"

	"github.com/unrolled/secure"
)

func secureOptions(isDevelopment bool) secure.Options {
	return secure.Options{
		IsDevelopment:         isDevelopment,
		ContentTypeNosniff:    true,
		FrameDeny:             true,
		BrowserXssFilter:      true,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}
}

// withSecureHeaders adds the security response headers.
func (h *Handler) withSecureHeaders() func(http.Handler) http.Handler {
	return secure.New(secureOptions(h.cfg.Development)).Handler
}
