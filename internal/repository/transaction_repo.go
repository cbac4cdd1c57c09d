package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
)

// TransactionRepository 收支记录数据访问接口
type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	GetByID(ctx context.Context, userID, id string) (*model.Transaction, error)
	List(ctx context.Context, userID string) ([]model.Transaction, error)
	ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]model.Transaction, error)
	Update(ctx context.Context, tx *model.Transaction) error
	Delete(ctx context.Context, userID, id string) error
}

type transactionRepo struct {
	db *gorm.DB
}

// NewTransactionRepo 创建 TransactionRepository 实例
func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepo) GetByID(ctx context.Context, userID, id string) (*model.Transaction, error) {
	var tx model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND transaction_id = ?", userID, id).
		First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepo) List(ctx context.Context, userID string) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_on DESC, created_at DESC").
		Find(&txs).Error
	return txs, err
}

// ListByDateRange 查询日期区间内的收支记录（含边界），用于报表导出
func (r *transactionRepo) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_on >= ? AND occurred_on <= ?", userID, from, to).
		Order("occurred_on ASC, created_at ASC").
		Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) Update(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *transactionRepo) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND transaction_id = ?", userID, id).
		Delete(&model.Transaction{}).Error
}
