package model

import "time"

// Semester 学期配置表 — 对应 semesters
//
// 不变量：同一 user_id 下最多存在一条 is_active=true 且 is_archived=false 的记录。
// 由服务层事务 + 数据库部分唯一索引 uniq_semesters_active_per_user 共同保证。
type Semester struct {
	SemesterID string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"semester_id"`
	UserID     string      `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Name       string      `gorm:"type:varchar(100);not null"                     json:"name"`
	StartDate  time.Time   `gorm:"type:date;not null"                             json:"start_date"`
	EndDate    time.Time   `gorm:"type:date;not null"                             json:"end_date"`
	Holidays   StringArray `gorm:"type:text[];not null;default:'{}'"              json:"holidays"`
	IsActive   bool        `gorm:"not null;default:false"                         json:"is_active"`
	IsArchived bool        `gorm:"not null;default:false"                         json:"is_archived"`
	BaseModel
}

// TableName 指定表名
func (Semester) TableName() string { return "semesters" }
