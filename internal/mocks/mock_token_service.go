package mocks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jd6186/interview-assignments/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc  func(userID uint) (string, error)
	DecodeFunc func(token string) (uint, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue mints a token for the user id
func (m *MockTokenService) Issue(userID uint) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID)
	}
	return fmt.Sprintf("token_%d", userID), nil
}

// Decode returns the subject encoded by the default Issue behavior
func (m *MockTokenService) Decode(token string) (uint, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(token)
	}
	raw, ok := strings.CutPrefix(token, "token_")
	if !ok {
		return 0, domain.ErrTokenInvalid
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, domain.ErrTokenMalformed
	}
	return uint(id), nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
