package model

import "time"

// Debt 债务表 — 对应 debts
type Debt struct {
	DebtID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"debt_id"`
	UserID       string     `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Counterparty string     `gorm:"type:varchar(100);not null"                     json:"counterparty"`
	Amount       float64    `gorm:"type:numeric(14,2);not null"                    json:"amount"`
	Direction    string     `gorm:"type:varchar(12);not null"                      json:"direction"` // owed_to_me | i_owe
	DueDate      *time.Time `gorm:"type:date"                                      json:"due_date,omitempty"`
	Settled      bool       `gorm:"not null;default:false"                         json:"settled"`
	BaseModel
}

// TableName 指定表名
func (Debt) TableName() string { return "debts" }
