package session

import "time"

// Session is the server-side record behind a signed session token. A token
// is accepted only while its row exists, is unrevoked and unexpired, so
// logout and account deletion kill tokens immediately.
type Session struct {
	ID        string     `gorm:"column:id;primaryKey"`
	Email     string     `gorm:"column:email;index"`
	UserAgent *string    `gorm:"column:user_agent"`
	IP        *string    `gorm:"column:ip"`
	ExpiresAt time.Time  `gorm:"column:expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (Session) TableName() string { return "sessions" }
