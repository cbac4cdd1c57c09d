package model

import (
	"time"

	"gorm.io/datatypes"
)

// ExpenseParticipant 分摊参与者（JSONB 元素）
type ExpenseParticipant struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}

// SharedExpense 共同支出表 — 对应 shared_expenses
// Participants 以 JSONB 存储参与者及各自分摊金额
type SharedExpense struct {
	ExpenseID    string                                       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"expense_id"`
	UserID       string                                       `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title        string                                       `gorm:"type:varchar(200);not null"                     json:"title"`
	TotalAmount  float64                                      `gorm:"type:numeric(14,2);not null"                    json:"total_amount"`
	OccurredOn   time.Time                                    `gorm:"type:date;not null"                             json:"occurred_on"`
	Participants datatypes.JSONSlice[ExpenseParticipant]      `gorm:"type:jsonb;not null;default:'[]'"               json:"participants"`
	Settled      bool                                         `gorm:"not null;default:false"                         json:"settled"`
	BaseModel
}

// TableName 指定表名
func (SharedExpense) TableName() string { return "shared_expenses" }
