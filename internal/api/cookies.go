package api

import (
	"net/http"
	"time"
)

// accessTokenCookie is the name of the cookie carrying the access token.
// Browser clients authenticate through it; API clients may use the
// Authorization header instead.
const accessTokenCookie = "access_token"

// setAuthCookie delivers the access token as an httponly cookie scoped to
// the whole API. SameSite=Lax blocks cross-site POSTs from sending it
// while keeping top-level navigation working.
func setAuthCookie(w http.ResponseWriter, token string, lifetime time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(lifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAuthCookie expires the access token cookie immediately.
func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
