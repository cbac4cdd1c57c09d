package dto

// ── 财务资源 DTO（钱包/收支/债务/共同支出）──

// CreateWalletRequest 创建钱包请求
type CreateWalletRequest struct {
	Name     string  `json:"name"     binding:"required,min=1,max=100"`
	Currency string  `json:"currency" binding:"omitempty,len=3"`
	Balance  float64 `json:"balance"`
}

// UpdateWalletRequest 更新钱包请求
type UpdateWalletRequest struct {
	Name     *string  `json:"name"     binding:"omitempty,min=1,max=100"`
	Currency *string  `json:"currency" binding:"omitempty,len=3"`
	Balance  *float64 `json:"balance"`
}

// CreateTransactionRequest 创建收支记录请求
type CreateTransactionRequest struct {
	WalletID   string  `json:"wallet_id"   binding:"omitempty,uuid"`
	TxType     string  `json:"tx_type"     binding:"required,oneof=income expense"`
	Category   string  `json:"category"    binding:"omitempty,max=50"`
	Amount     float64 `json:"amount"      binding:"required,gt=0"`
	OccurredOn string  `json:"occurred_on" binding:"required"`
	Note       string  `json:"note"`
}

// UpdateTransactionRequest 更新收支记录请求
type UpdateTransactionRequest struct {
	TxType     *string  `json:"tx_type"     binding:"omitempty,oneof=income expense"`
	Category   *string  `json:"category"    binding:"omitempty,max=50"`
	Amount     *float64 `json:"amount"      binding:"omitempty,gt=0"`
	OccurredOn *string  `json:"occurred_on"`
	Note       *string  `json:"note"`
}

// CreateDebtRequest 创建债务请求
type CreateDebtRequest struct {
	Counterparty string  `json:"counterparty" binding:"required,min=1,max=100"`
	Amount       float64 `json:"amount"       binding:"required,gt=0"`
	Direction    string  `json:"direction"    binding:"required,oneof=owed_to_me i_owe"`
	DueDate      string  `json:"due_date"` // 可空
}

// UpdateDebtRequest 更新债务请求
type UpdateDebtRequest struct {
	Counterparty *string  `json:"counterparty" binding:"omitempty,min=1,max=100"`
	Amount       *float64 `json:"amount"       binding:"omitempty,gt=0"`
	Direction    *string  `json:"direction"    binding:"omitempty,oneof=owed_to_me i_owe"`
	DueDate      *string  `json:"due_date"`
	Settled      *bool    `json:"settled"`
}

// ExpenseParticipantRequest 分摊参与者
type ExpenseParticipantRequest struct {
	Name  string  `json:"name"  binding:"required,min=1,max=100"`
	Share float64 `json:"share" binding:"required,gt=0"`
}

// CreateSharedExpenseRequest 创建共同支出请求
type CreateSharedExpenseRequest struct {
	Title        string                      `json:"title"        binding:"required,min=1,max=200"`
	TotalAmount  float64                     `json:"total_amount" binding:"required,gt=0"`
	OccurredOn   string                      `json:"occurred_on"  binding:"required"`
	Participants []ExpenseParticipantRequest `json:"participants" binding:"required,min=1,dive"`
}

// UpdateSharedExpenseRequest 更新共同支出请求
type UpdateSharedExpenseRequest struct {
	Title        *string                      `json:"title"        binding:"omitempty,min=1,max=200"`
	TotalAmount  *float64                     `json:"total_amount" binding:"omitempty,gt=0"`
	OccurredOn   *string                      `json:"occurred_on"`
	Participants *[]ExpenseParticipantRequest `json:"participants" binding:"omitempty,min=1,dive"`
	Settled      *bool                        `json:"settled"`
}
