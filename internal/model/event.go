package model

import "time"

// Event 个人日程表 — 对应 events
type Event struct {
	EventID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	UserID      string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	EventDate   time.Time `gorm:"type:date;not null"                             json:"event_date"`
	Location    string    `gorm:"type:varchar(100);not null;default:''"          json:"location"`
	Description string    `gorm:"type:text;not null;default:''"                  json:"description"`
	BaseModel
}

// TableName 指定表名
func (Event) TableName() string { return "events" }
