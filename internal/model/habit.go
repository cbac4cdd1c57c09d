package model

// Habit 习惯打卡表 — 对应 habits
// CompletedDates 存放 "2006-01-02" 格式的日期串集合，按日粒度去重
type Habit struct {
	HabitID        string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"habit_id"`
	UserID         string      `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Name           string      `gorm:"type:varchar(100);not null"                     json:"name"`
	Icon           string      `gorm:"type:varchar(50);not null;default:''"           json:"icon"`
	CompletedDates StringArray `gorm:"type:text[];not null;default:'{}'"              json:"completed_dates"`
	BaseModel
}

// TableName 指定表名
func (Habit) TableName() string { return "habits" }
