package model

import "time"

// SemesterEvent 学期事件表 — 对应 semester_events
type SemesterEvent struct {
	EventID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	UserID     string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	SemesterID string    `gorm:"type:uuid;not null"                             json:"semester_id"`
	Title      string    `gorm:"type:varchar(200);not null"                     json:"title"`
	EventDate  time.Time `gorm:"type:date;not null"                             json:"event_date"`
	EventType  string    `gorm:"type:varchar(20);not null;default:'other'"      json:"event_type"` // class | exam | assignment | holiday | other
	BaseModel
}

// TableName 指定表名
func (SemesterEvent) TableName() string { return "semester_events" }
