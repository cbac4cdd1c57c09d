package model

// TimetableEntry 课程表条目 — 对应 timetable_entries
type TimetableEntry struct {
	EntryID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	UserID     string `gorm:"type:uuid;not null;index"                       json:"user_id"`
	SemesterID string `gorm:"type:uuid;not null"                             json:"semester_id"`
	Subject    string `gorm:"type:varchar(100);not null"                     json:"subject"`
	DayOfWeek  int    `gorm:"not null"                                       json:"day_of_week"` // 1=周一 … 7=周日
	StartTime  string `gorm:"type:varchar(5);not null"                       json:"start_time"`  // "08:00"
	EndTime    string `gorm:"type:varchar(5);not null"                       json:"end_time"`    // "09:40"
	Location   string `gorm:"type:varchar(100);not null;default:''"          json:"location"`
	Color      string `gorm:"type:varchar(20);not null;default:''"           json:"color"`
	BaseModel
}

// TableName 指定表名
func (TimetableEntry) TableName() string { return "timetable_entries" }
