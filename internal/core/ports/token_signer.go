package ports

// TokenSigner issues and verifies self-contained bearer tokens carrying a
// user identity claim. Tokens are stateless: there is no server-side session
// table and no revocation, so an issued token stays valid until expiry.
type TokenSigner interface {
	Issue(userID string) (string, error)
	// Verify returns the embedded user id, or domain.ErrTokenInvalid when
	// the signature does not match, the payload is malformed, or the token
	// has expired.
	Verify(token string) (string, error)
}
