package usecases

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenGenerator issues a signed access token for an authenticated user.
type TokenGenerator interface {
	Generate(userID uint, email, role string) (string, error)
}
