package model

import "time"

// Transaction 收支记录表 — 对应 transactions
type Transaction struct {
	TransactionID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"transaction_id"`
	UserID        string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	WalletID      *string   `gorm:"type:uuid"                                      json:"wallet_id,omitempty"`
	TxType        string    `gorm:"type:varchar(10);not null;column:tx_type"       json:"tx_type"` // income | expense
	Category      string    `gorm:"type:varchar(50);not null;default:''"           json:"category"`
	Amount        float64   `gorm:"type:numeric(14,2);not null"                    json:"amount"`
	OccurredOn    time.Time `gorm:"type:date;not null"                             json:"occurred_on"`
	Note          string    `gorm:"type:text;not null;default:''"                  json:"note"`
	BaseModel
}

// TableName 指定表名
func (Transaction) TableName() string { return "transactions" }
