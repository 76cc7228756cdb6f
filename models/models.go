package models

import "time"

// User is an account holder. A user is created once at registration and is
// never updated or deleted afterwards.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"size:255;not null;unique" json:"username"`
	Email      string    `gorm:"size:255;not null;unique" json:"email"`
	HashedPass []byte    `gorm:"column:hashed_pass;not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`

	Expenses []Expense `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// Expense is a single spending record owned by exactly one user. Notes is a
// pointer so an absent note stays NULL instead of collapsing to "".
type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Category  string    `gorm:"size:255;not null" json:"category"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Notes     *string   `gorm:"size:1024" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
