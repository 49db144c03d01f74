package service

import "crypto/subtle"

// AuthService guards the word list management endpoints
type AuthService struct {
	teacherPassword string
}

// NewAuthService creates a new auth service.
// An empty password disables the check.
func NewAuthService(teacherPassword string) *AuthService {
	return &AuthService{
		teacherPassword: teacherPassword,
	}
}

// Enabled reports whether a teacher password is configured
func (s *AuthService) Enabled() bool {
	return s.teacherPassword != ""
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	if !s.Enabled() {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.teacherPassword)) == 1
}
