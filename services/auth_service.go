package services

import (
	"fmt"
	"strings"
	"time"

	"timebank/auth"
	"timebank/errors"
	"timebank/repositories"
)

type IAuthService interface {
	Register(email, password string) (Session, error)
	Login(email, password string) (Session, error)
}

// Session is what a successful sign-up or sign-in hands back to the client.
type Session struct {
	Token  string
	UserID string
}

type AuthService struct {
	userRepository repositories.IUserRepository
	tokenDuration  time.Duration
}

func NewAuthService(repo repositories.IUserRepository, tokenDuration time.Duration) IAuthService {
	return &AuthService{userRepository: repo, tokenDuration: tokenDuration}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(email, password string) (Session, error) {
	email = normalizeEmail(email)
	// Rules are checked before the costly argon2 derivation
	if err := auth.ValidateRegister(auth.RegisterRequest{Email: email, Password: password}); err != nil {
		return Session{}, fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.userRepository.CreateUser(email, hashedPassword)
	if err != nil {
		return Session{}, err
	}
	return s.issue(userID, email, []string{"user"})
}

func (s *AuthService) Login(email, password string) (Session, error) {
	email = normalizeEmail(email)
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		// Same answer for unknown email and wrong password
		return Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}
	return s.issue(user.ID, user.Email, user.Roles)
}

func (s *AuthService) issue(userID, email string, roles []string) (Session, error) {
	token, err := auth.GenerateToken(userID, email, roles, s.tokenDuration)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}
	return Session{Token: token, UserID: userID}, nil
}
