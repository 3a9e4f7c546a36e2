package auth

import "time"

// User is keyed by its lowercased email. The credential is stored only as a
// bcrypt hash.
type User struct {
	Email        string    `gorm:"column:email;primaryKey" json:"email"`
	Username     string    `gorm:"column:username" json:"username"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
