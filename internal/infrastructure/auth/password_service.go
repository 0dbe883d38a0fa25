package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jd6186/interview-assignments/domain"
)

// PasswordServiceImpl implements domain.PasswordService on bcrypt. The salt
// is embedded in the hash output, so verification needs no stored salt.
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{cost: bcrypt.DefaultCost}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService. Comparison is delegated to
// bcrypt, which is constant-time with respect to mismatch position.
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
