package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-table-order/internal/utils"
)

const (
	csrfCookieName   = "XSRF-TOKEN"
	csrfHeaderName   = "X-CSRF-Token"
	csrfHeaderLegacy = "X-XSRF-Token"
	csrfTokenBytes   = 32
)

// checkCSRF implements the double-submit check: the header must repeat the
// CSRF cookie issued by GET /api/admin/csrf-token.
func (h *Handler) checkCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(csrfCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, r, ErrCSRFTokenMismatch)
			return
		}

		provided := r.Header.Get(csrfHeaderName)
		if provided == "" {
			provided = r.Header.Get(csrfHeaderLegacy)
		}

		if !secureCompare(cookie.Value, provided) {
			writeError(w, r, ErrCSRFTokenMismatch)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// issueCSRFToken reuses the request's CSRF cookie or sets a new one.
func (h *Handler) issueCSRFToken(w http.ResponseWriter, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(csrfCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	token, err := utils.RandomString(csrfTokenBytes)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		Secure:   h.cfg.SecureCookies,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
	return token, nil
}

func secureCompare(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
