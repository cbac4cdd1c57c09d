package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
)

// NoteRepository 笔记数据访问接口
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	GetByID(ctx context.Context, userID, id string) (*model.Note, error)
	List(ctx context.Context, userID string) ([]model.Note, error)
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, userID, id string) error
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepo 创建 NoteRepository 实例
func NewNoteRepo(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepo) GetByID(ctx context.Context, userID, id string) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND note_id = ?", userID, id).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// List 置顶在前，再按更新时间倒序
func (r *noteRepo) List(ctx context.Context, userID string) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("pinned DESC, updated_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepo) Update(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *noteRepo) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND note_id = ?", userID, id).
		Delete(&model.Note{}).Error
}
