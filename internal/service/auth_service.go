package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-api/internal/model"
)

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id string) (model.User, error)
}

// AuthService verifies credentials and composes token issuance/verification.
// It never mutates state: a login is a single read plus a bcrypt compare.
type AuthService struct {
	users  userFinder
	tokens *TokenIssuer
}

func NewAuthService(users userFinder, tokens *TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login looks up exactly one user by email and verifies the password.
// Unknown email and wrong password are distinct error kinds here; the HTTP
// layer collapses them into one generic message so responses never reveal
// which part was wrong. On success the full user record is returned, hash
// included; callers must strip it before sending the record outward.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("login lookup: %w", err)
	}

	ok, err := VerifyPassword(password, user.Password)
	if err != nil {
		return model.User{}, err
	}
	if !ok {
		return model.User{}, model.ErrIncorrectPassword
	}

	return user, nil
}

// IssueToken mints a bearer token for the given user id.
func (s *AuthService) IssueToken(userID string) (string, error) {
	return s.tokens.Issue(userID)
}

// VerifyToken validates a bearer token and returns its claims.
func (s *AuthService) VerifyToken(tokenString string) (*model.AuthClaims, error) {
	return s.tokens.Verify(tokenString)
}

// ResolveUser maps verified claims back to a full user record. A token whose
// subject was deleted after issuance resolves to model.ErrUserGone.
func (s *AuthService) ResolveUser(ctx context.Context, claims *model.AuthClaims) (model.User, error) {
	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, model.ErrUserGone
	}
	if err != nil {
		return model.User{}, fmt.Errorf("resolve token subject: %w", err)
	}

	return user, nil
}
