package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
)

// SemesterRepository 学期数据访问接口
// 所有查询均以 userID 作用域过滤：他人的学期与不存在的学期不可区分
type SemesterRepository interface {
	Create(ctx context.Context, semester *model.Semester) error
	GetByID(ctx context.Context, userID, id string) (*model.Semester, error)
	GetActive(ctx context.Context, userID string) (*model.Semester, error)
	ListAll(ctx context.Context, userID string) ([]model.Semester, error)
	ListArchived(ctx context.Context, userID string) ([]model.Semester, error)
	ListExpiredArchived(ctx context.Context, userID string, now time.Time) ([]model.Semester, error)
	Update(ctx context.Context, semester *model.Semester) error
	DeactivateAll(ctx context.Context, userID string) error
}

type semesterRepo struct {
	db *gorm.DB
}

// NewSemesterRepo 创建 SemesterRepository 实例
func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) Create(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Create(semester).Error
}

func (r *semesterRepo) GetByID(ctx context.Context, userID, id string) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND semester_id = ?", userID, id).
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

// GetActive 返回用户当前 活动且未归档 的学期
// 理论上唯一；若约束外残留多条，以 created_at 最新者为准
func (r *semesterRepo) GetActive(ctx context.Context, userID string) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND is_archived = ?", userID, true, false).
		Order("created_at DESC").
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) ListAll(ctx context.Context, userID string) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_archived = ?", userID, false).
		Order("created_at DESC").
		Find(&semesters).Error
	return semesters, err
}

func (r *semesterRepo) ListArchived(ctx context.Context, userID string) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_archived = ?", userID, true).
		Order("end_date DESC").
		Find(&semesters).Error
	return semesters, err
}

func (r *semesterRepo) ListExpiredArchived(ctx context.Context, userID string, now time.Time) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_archived = ? AND end_date < ?", userID, true, now).
		Order("end_date DESC").
		Find(&semesters).Error
	return semesters, err
}

func (r *semesterRepo) Update(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Save(semester).Error
}

// DeactivateAll 将用户所有未归档学期的 is_active 置为 false
// 必须与后续的插入/激活写入处于同一事务（通过 Repository.WithTx 注入事务连接）
func (r *semesterRepo) DeactivateAll(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Semester{}).
		Where("user_id = ? AND is_active = ? AND is_archived = ?", userID, true, false).
		Update("is_active", false).Error
}
