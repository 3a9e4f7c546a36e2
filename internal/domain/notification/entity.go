package notification

import "time"

type Status string

const (
	StatusUnread Status = "Unread"
	StatusRead   Status = "Read"
)

// Notification is one entry in a user's append-only event log. Entries are
// created as side effects of account and media operations and are only ever
// mutated by the bulk mark-all-read operation.
type Notification struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Email     string    `gorm:"column:email;index" json:"email"`
	Title     string    `gorm:"column:title" json:"title"`
	Message   string    `gorm:"column:message" json:"message"`
	Status    Status    `gorm:"column:status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"time"`
}

func (Notification) TableName() string { return "notifications" }
