package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
)

// SemesterEventRepository 学期事件数据访问接口
type SemesterEventRepository interface {
	Create(ctx context.Context, event *model.SemesterEvent) error
	GetByID(ctx context.Context, userID, id string) (*model.SemesterEvent, error)
	ListBySemester(ctx context.Context, userID, semesterID string) ([]model.SemesterEvent, error)
	Delete(ctx context.Context, userID, id string) error
}

type semesterEventRepo struct {
	db *gorm.DB
}

// NewSemesterEventRepo 创建 SemesterEventRepository 实例
func NewSemesterEventRepo(db *gorm.DB) SemesterEventRepository {
	return &semesterEventRepo{db: db}
}

func (r *semesterEventRepo) Create(ctx context.Context, event *model.SemesterEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *semesterEventRepo) GetByID(ctx context.Context, userID, id string) (*model.SemesterEvent, error) {
	var event model.SemesterEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *semesterEventRepo) ListBySemester(ctx context.Context, userID, semesterID string) ([]model.SemesterEvent, error) {
	var events []model.SemesterEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND semester_id = ?", userID, semesterID).
		Order("event_date ASC").
		Find(&events).Error
	return events, err
}

func (r *semesterEventRepo) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, id).
		Delete(&model.SemesterEvent{}).Error
}
