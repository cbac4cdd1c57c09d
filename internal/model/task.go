package model

import "time"

// Task 待办事项表 — 对应 tasks
type Task struct {
	TaskID      string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"task_id"`
	UserID      string     `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title       string     `gorm:"type:varchar(200);not null"                     json:"title"`
	Description string     `gorm:"type:text;not null;default:''"                  json:"description"`
	DueDate     *time.Time `gorm:"type:date"                                      json:"due_date,omitempty"`
	Priority    string     `gorm:"type:varchar(10);not null;default:'medium'"     json:"priority"` // low | medium | high
	Completed   bool       `gorm:"not null;default:false"                         json:"completed"`
	BaseModel
}

// TableName 指定表名
func (Task) TableName() string { return "tasks" }
