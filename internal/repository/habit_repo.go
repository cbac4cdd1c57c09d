package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
)

// HabitRepository 习惯数据访问接口
type HabitRepository interface {
	Create(ctx context.Context, habit *model.Habit) error
	GetByID(ctx context.Context, userID, id string) (*model.Habit, error)
	List(ctx context.Context, userID string) ([]model.Habit, error)
	Update(ctx context.Context, habit *model.Habit) error
	Delete(ctx context.Context, userID, id string) error
}

type habitRepo struct {
	db *gorm.DB
}

// NewHabitRepo 创建 HabitRepository 实例
func NewHabitRepo(db *gorm.DB) HabitRepository {
	return &habitRepo{db: db}
}

func (r *habitRepo) Create(ctx context.Context, habit *model.Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}

func (r *habitRepo) GetByID(ctx context.Context, userID, id string) (*model.Habit, error) {
	var habit model.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ?", userID, id).
		First(&habit).Error
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *habitRepo) List(ctx context.Context, userID string) ([]model.Habit, error) {
	var habits []model.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&habits).Error
	return habits, err
}

func (r *habitRepo) Update(ctx context.Context, habit *model.Habit) error {
	return r.db.WithContext(ctx).Save(habit).Error
}

func (r *habitRepo) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ?", userID, id).
		Delete(&model.Habit{}).Error
}
