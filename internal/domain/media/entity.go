package media

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusFailed     Status = "Failed"
)

// TagList is stored as a JSON string so it survives both SQLite and Postgres.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *TagList) Scan(src any) error {
	if src == nil {
		*t = TagList{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", src)
	}
	if len(raw) == 0 {
		*t = TagList{}
		return nil
	}
	return json.Unmarshal(raw, t)
}

// Media is the metadata record of one uploaded file. StoredName is unique
// and maps 1:1 to a blob store entry; the record is never mutated after
// creation except for its status.
type Media struct {
	ID         string    `gorm:"column:id;primaryKey" json:"id"`
	Email      string    `gorm:"column:email;index" json:"email"`
	Filename   string    `gorm:"column:filename" json:"filename"`
	StoredName string    `gorm:"column:stored_name;uniqueIndex" json:"stored_name"`
	Type       string    `gorm:"column:type" json:"type"`
	SizeKB     float64   `gorm:"column:size_kb" json:"size_kb"`
	Status     Status    `gorm:"column:status" json:"status"`
	Tags       TagList   `gorm:"column:tags;type:text" json:"tags"`
	UploadedAt time.Time `gorm:"column:uploaded_at;index" json:"uploaded_at"`
}

func (Media) TableName() string { return "media_files" }
