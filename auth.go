package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"budgeteer/models"
	"budgeteer/pkg/token"
)

// Auth verifies passwords and issues bearer tokens. The signing secret is
// injected via Config so every deployment (and every test) controls it.
type Auth struct {
	creds      CredentialStore
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuth(creds CredentialStore, cfg *Config) *Auth {
	return &Auth{
		creds:      creds,
		secret:     cfg.JWTSecret,
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register hashes the password with a fresh per-user salt and persists the
// new user.
func (a *Auth) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrValidation
	}
	salt, err := newSalt()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return nil, err
	}
	return a.creds.CreateUser(ctx, username, hash, salt)
}

// Login checks the password and returns a signed access token. Unknown user
// and wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.creds.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return token.Issue(user.ID, user.Username, a.secret, a.tokenTTL)
}

// VerifyToken validates a bearer token and returns its claims.
func (a *Auth) VerifyToken(tokenString string) (*token.Claims, error) {
	return token.Verify(tokenString, a.secret)
}

// newSalt returns a random per-user salt, stored alongside the bcrypt hash.
// Verification relies on the salt bcrypt embeds in the hash itself.
func newSalt() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
