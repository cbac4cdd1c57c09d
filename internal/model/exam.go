package model

import "time"

// Exam 考试表 — 对应 exams
type Exam struct {
	ExamID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_id"`
	UserID     string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	SemesterID string    `gorm:"type:uuid;not null"                             json:"semester_id"`
	Subject    string    `gorm:"type:varchar(100);not null"                     json:"subject"`
	ExamDate   time.Time `gorm:"type:date;not null"                             json:"exam_date"`
	StartTime  string    `gorm:"type:varchar(5);not null;default:''"            json:"start_time"`
	Location   string    `gorm:"type:varchar(100);not null;default:''"          json:"location"`
	Notes      string    `gorm:"type:text;not null;default:''"                  json:"notes"`
	BaseModel
}

// TableName 指定表名
func (Exam) TableName() string { return "exams" }
