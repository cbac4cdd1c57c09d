package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
)

var ErrNoteNotFound = errors.New("笔记不存在")

// NoteService 笔记业务接口
type NoteService interface {
	Create(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*model.Note, error)
	List(ctx context.Context, userID string) ([]model.Note, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateNoteRequest) (*model.Note, error)
	Delete(ctx context.Context, userID, id string) error
}

type noteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(repo *repository.Repository, logger *zap.Logger) NoteService {
	return &noteService{repo: repo, logger: logger}
}

func (s *noteService) Create(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*model.Note, error) {
	note := &model.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Pinned:  req.Pinned,
	}

	if err := s.repo.Note.Create(ctx, note); err != nil {
		s.logger.Error("创建笔记失败", zap.Error(err))
		return nil, err
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context, userID string) ([]model.Note, error) {
	notes, err := s.repo.Note.List(ctx, userID)
	if err != nil {
		s.logger.Error("列出笔记失败", zap.Error(err))
		return nil, err
	}
	return notes, nil
}

func (s *noteService) Update(ctx context.Context, userID, id string, req *dto.UpdateNoteRequest) (*model.Note, error) {
	note, err := s.repo.Note.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		s.logger.Error("查询笔记失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Pinned != nil {
		note.Pinned = *req.Pinned
	}

	if err := s.repo.Note.Update(ctx, note); err != nil {
		s.logger.Error("更新笔记失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Note.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		s.logger.Error("查询笔记失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Note.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除笔记失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
