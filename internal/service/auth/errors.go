package auth

import "errors"

// Token validation sentinels. The API layer maps all of them to 401; the
// split exists so responses can be worded precisely (an expired access
// token invites a refresh, an expired refresh token forces a new login).
var (
	ErrInvalidToken     = errors.New("invalid authentication token")
	ErrExpiredToken     = errors.New("authentication token has expired")
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
	ErrMissingToken     = errors.New("authentication token is missing")

	// ErrWrongTokenType flags a structurally valid token presented in
	// the wrong slot, such as a refresh token on a protected route.
	ErrWrongTokenType = errors.New("wrong token type")

	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrExpiredRefreshToken = errors.New("refresh token has expired")
)
