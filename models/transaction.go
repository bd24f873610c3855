package models

import "time"

// Transaction type values.
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// Transaction is a single income or expense record belonging to one user.
// Date is the effective calendar date (YYYY-MM-DD), not the creation time,
// and Amount is a positive magnitude disambiguated by Type.
type Transaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Date      string    `gorm:"size:10;not null" json:"date"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Category  string    `gorm:"size:255;not null" json:"category"`
	Type      string    `gorm:"size:16;not null" json:"type"`
	Currency  string    `gorm:"size:16;not null;default:USD" json:"currency"`
}
