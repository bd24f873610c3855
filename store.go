package main

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"budgeteer/models"
)

// CredentialStore persists the username -> password credential mapping.
type CredentialStore interface {
	CreateUser(ctx context.Context, username string, passwordHash []byte, salt string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// LedgerStore persists transactions, always scoped by the owning user.
type LedgerStore interface {
	Insert(ctx context.Context, tx *models.Transaction) error
	ListByUser(ctx context.Context, userID uint, ascending bool) ([]models.Transaction, error)
	DeleteByID(ctx context.Context, id, userID uint) (int64, error)
}

// gormStore backs both stores with a single Postgres connection.
type gormStore struct {
	db *gorm.DB
}

func newGormStore(db *gorm.DB) *gormStore {
	return &gormStore{db: db}
}

func (s *gormStore) CreateUser(ctx context.Context, username string, passwordHash []byte, salt string) (*models.User, error) {
	if username == "" || len(passwordHash) == 0 || salt == "" {
		return nil, ErrValidation
	}
	user := models.User{Username: username, PasswordHash: passwordHash, Salt: salt}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// The unique index is the source of truth: concurrent registrations
		// race here and exactly one wins.
		if isUniqueConstraintError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) Insert(ctx context.Context, tx *models.Transaction) error {
	if tx.UserID == 0 || tx.Date == "" || tx.Category == "" || tx.Type == "" || tx.Currency == "" {
		return ErrValidation
	}
	return s.db.WithContext(ctx).Create(tx).Error
}

func (s *gormStore) ListByUser(ctx context.Context, userID uint, ascending bool) ([]models.Transaction, error) {
	order := "date desc"
	if ascending {
		order = "date asc"
	}
	items := []models.Transaction{}
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order(order).Find(&items).Error
	return items, err
}

// DeleteByID removes the row only if it belongs to userID. A zero count
// means "absent or someone else's" and the caller cannot tell which.
func (s *gormStore) DeleteByID(ctx context.Context, id, userID uint) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	return res.RowsAffected, res.Error
}

// isUniqueConstraintError reports whether err came from a violated unique index.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "SQLSTATE 23505")
}
