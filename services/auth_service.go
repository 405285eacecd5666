package services

import (
	"errors"

	"fitledger/utils"
)

// AuthService authenticates the app's single user against the configured
// credentials. There is no user table; the tracker is inherently
// single-user, like the device-local app it serves.
type AuthService struct {
	email        string
	passwordHash string
	jwtSecret    []byte
}

func NewAuthService(email, passwordHash string, jwtSecret []byte) *AuthService {
	return &AuthService{email: email, passwordHash: passwordHash, jwtSecret: jwtSecret}
}

// Authenticate checks the credentials and returns a signed session token.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	if email != s.email || !utils.CheckPasswordHash(password, s.passwordHash) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(email, s.jwtSecret)
}

// Verify validates a session token and returns the authenticated email.
func (s *AuthService) Verify(token string) (string, error) {
	email, err := utils.ParseJWT(token, s.jwtSecret)
	if err != nil {
		return "", err
	}
	if email != s.email {
		return "", errors.New("unknown user")
	}
	return email, nil
}
