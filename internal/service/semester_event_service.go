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

var ErrSemesterEventNotFound = errors.New("学期事件不存在")

// SemesterEventService 学期事件业务接口
type SemesterEventService interface {
	Create(ctx context.Context, userID string, req *dto.CreateSemesterEventRequest) (*model.SemesterEvent, error)
	List(ctx context.Context, userID, semesterID string) ([]model.SemesterEvent, error)
	Delete(ctx context.Context, userID, id string) error
}

type semesterEventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSemesterEventService 创建 SemesterEventService 实例
func NewSemesterEventService(repo *repository.Repository, logger *zap.Logger) SemesterEventService {
	return &semesterEventService{repo: repo, logger: logger}
}

func (s *semesterEventService) Create(ctx context.Context, userID string, req *dto.CreateSemesterEventRequest) (*model.SemesterEvent, error) {
	semesterID, err := resolveSemesterID(ctx, s.repo, userID, req.SemesterID)
	if err != nil {
		return nil, err
	}

	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = "other"
	}

	event := &model.SemesterEvent{
		UserID:     userID,
		SemesterID: semesterID,
		Title:      req.Title,
		EventDate:  eventDate,
		EventType:  eventType,
	}

	if err := s.repo.SemesterEvent.Create(ctx, event); err != nil {
		s.logger.Error("创建学期事件失败", zap.Error(err))
		return nil, err
	}

	return event, nil
}

// List 省略 semesterID 时回退到当前活动学期
func (s *semesterEventService) List(ctx context.Context, userID, semesterID string) ([]model.SemesterEvent, error) {
	resolved, err := resolveSemesterID(ctx, s.repo, userID, semesterID)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.SemesterEvent.ListBySemester(ctx, userID, resolved)
	if err != nil {
		s.logger.Error("列出学期事件失败", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *semesterEventService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.SemesterEvent.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterEventNotFound
		}
		s.logger.Error("查询学期事件失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.SemesterEvent.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除学期事件失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
