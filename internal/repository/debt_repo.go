package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
)

// DebtRepository 债务数据访问接口
type DebtRepository interface {
	Create(ctx context.Context, debt *model.Debt) error
	GetByID(ctx context.Context, userID, id string) (*model.Debt, error)
	List(ctx context.Context, userID string) ([]model.Debt, error)
	Update(ctx context.Context, debt *model.Debt) error
	Delete(ctx context.Context, userID, id string) error
}

type debtRepo struct {
	db *gorm.DB
}

// NewDebtRepo 创建 DebtRepository 实例
func NewDebtRepo(db *gorm.DB) DebtRepository {
	return &debtRepo{db: db}
}

func (r *debtRepo) Create(ctx context.Context, debt *model.Debt) error {
	return r.db.WithContext(ctx).Create(debt).Error
}

func (r *debtRepo) GetByID(ctx context.Context, userID, id string) (*model.Debt, error) {
	var debt model.Debt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND debt_id = ?", userID, id).
		First(&debt).Error
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

// List 未结清在前，再按到期日升序（无到期日的排最后）
func (r *debtRepo) List(ctx context.Context, userID string) ([]model.Debt, error) {
	var debts []model.Debt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("settled ASC, due_date ASC NULLS LAST, created_at DESC").
		Find(&debts).Error
	return debts, err
}

func (r *debtRepo) Update(ctx context.Context, debt *model.Debt) error {
	return r.db.WithContext(ctx).Save(debt).Error
}

func (r *debtRepo) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND debt_id = ?", userID, id).
		Delete(&model.Debt{}).Error
}
