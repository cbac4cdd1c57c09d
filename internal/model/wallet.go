package model

// Wallet 钱包表 — 对应 wallets
type Wallet struct {
	WalletID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"wallet_id"`
	UserID   string  `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Name     string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Currency string  `gorm:"type:varchar(10);not null;default:'CNY'"        json:"currency"`
	Balance  float64 `gorm:"type:numeric(14,2);not null;default:0"          json:"balance"`
	BaseModel
}

// TableName 指定表名
func (Wallet) TableName() string { return "wallets" }
