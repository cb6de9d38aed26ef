package models

import "time"

// QueryLog represents the query_logs table
// One row per tool invocation, written when the MySQL mirror is enabled
type QueryLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RequestID  string    `gorm:"size:36;index" json:"request_id"`
	Tool       string    `gorm:"size:100;not null;index" json:"tool"`
	Arguments  string    `gorm:"type:text" json:"arguments"`
	Outcome    string    `gorm:"size:32;not null" json:"outcome"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for QueryLog model
func (QueryLog) TableName() string {
	return "query_logs"
}
