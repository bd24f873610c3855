package main

import (
	"context"
	"sort"
	"sync"

	"budgeteer/models"
)

// memStore is an in-memory stand-in for the Postgres store, used by the
// contract tests so they run without a database.
type memStore struct {
	mu       sync.Mutex
	users    []models.User
	txs      []models.Transaction
	nextUser uint
	nextTx   uint
}

func newMemStore() *memStore {
	return &memStore{nextUser: 1, nextTx: 1}
}

func (m *memStore) CreateUser(_ context.Context, username string, passwordHash []byte, salt string) (*models.User, error) {
	if username == "" || len(passwordHash) == 0 || salt == "" {
		return nil, ErrValidation
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return nil, ErrDuplicateUsername
		}
	}
	u := models.User{ID: m.nextUser, Username: username, PasswordHash: passwordHash, Salt: salt}
	m.nextUser++
	m.users = append(m.users, u)
	return &u, nil
}

func (m *memStore) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *memStore) Insert(_ context.Context, tx *models.Transaction) error {
	if tx.UserID == 0 || tx.Date == "" || tx.Category == "" || tx.Type == "" || tx.Currency == "" {
		return ErrValidation
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx.ID = m.nextTx
	m.nextTx++
	m.txs = append(m.txs, *tx)
	return nil
}

func (m *memStore) ListByUser(_ context.Context, userID uint, ascending bool) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Transaction{}
	for _, tx := range m.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	// Stable sort keeps insertion order for equal dates.
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Date < out[j].Date
		}
		return out[i].Date > out[j].Date
	})
	return out, nil
}

func (m *memStore) DeleteByID(_ context.Context, id, userID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, tx := range m.txs {
		if tx.ID == id && tx.UserID == userID {
			m.txs = append(m.txs[:i], m.txs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
