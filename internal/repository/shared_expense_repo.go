package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
)

// SharedExpenseRepository 共同支出数据访问接口
type SharedExpenseRepository interface {
	Create(ctx context.Context, expense *model.SharedExpense) error
	GetByID(ctx context.Context, userID, id string) (*model.SharedExpense, error)
	List(ctx context.Context, userID string) ([]model.SharedExpense, error)
	Update(ctx context.Context, expense *model.SharedExpense) error
	Delete(ctx context.Context, userID, id string) error
}

type sharedExpenseRepo struct {
	db *gorm.DB
}

// NewSharedExpenseRepo 创建 SharedExpenseRepository 实例
func NewSharedExpenseRepo(db *gorm.DB) SharedExpenseRepository {
	return &sharedExpenseRepo{db: db}
}

func (r *sharedExpenseRepo) Create(ctx context.Context, expense *model.SharedExpense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *sharedExpenseRepo) GetByID(ctx context.Context, userID, id string) (*model.SharedExpense, error) {
	var expense model.SharedExpense
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND expense_id = ?", userID, id).
		First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *sharedExpenseRepo) List(ctx context.Context, userID string) ([]model.SharedExpense, error) {
	var expenses []model.SharedExpense
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_on DESC, created_at DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *sharedExpenseRepo) Update(ctx context.Context, expense *model.SharedExpense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *sharedExpenseRepo) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND expense_id = ?", userID, id).
		Delete(&model.SharedExpense{}).Error
}
