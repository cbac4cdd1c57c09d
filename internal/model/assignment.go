package model

import "time"

// Assignment 作业表 — 对应 assignments
type Assignment struct {
	AssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	UserID       string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	SemesterID   string    `gorm:"type:uuid;not null"                             json:"semester_id"`
	Title        string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Subject      string    `gorm:"type:varchar(100);not null;default:''"          json:"subject"`
	DueDate      time.Time `gorm:"type:date;not null"                             json:"due_date"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`   // pending | in_progress | completed
	Priority     string    `gorm:"type:varchar(10);not null;default:'medium'"     json:"priority"` // low | medium | high
	BaseModel
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }
