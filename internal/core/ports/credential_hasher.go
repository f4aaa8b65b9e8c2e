package ports

// CredentialHasher derives and checks salted password hashes. Compare must
// use the constant-time comparison of the underlying primitive, never plain
// string equality.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
