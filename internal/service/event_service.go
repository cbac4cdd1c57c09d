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

var ErrEventNotFound = errors.New("日程不存在")

// EventService 个人日程业务接口
type EventService interface {
	Create(ctx context.Context, userID string, req *dto.CreateEventRequest) (*model.Event, error)
	List(ctx context.Context, userID string) ([]model.Event, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateEventRequest) (*model.Event, error)
	Delete(ctx context.Context, userID, id string) error
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

func (s *eventService) Create(ctx context.Context, userID string, req *dto.CreateEventRequest) (*model.Event, error) {
	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		UserID:      userID,
		Title:       req.Title,
		EventDate:   eventDate,
		Location:    req.Location,
		Description: req.Description,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.logger.Error("创建日程失败", zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, userID string) ([]model.Event, error) {
	events, err := s.repo.Event.List(ctx, userID)
	if err != nil {
		s.logger.Error("列出日程失败", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, userID, id string, req *dto.UpdateEventRequest) (*model.Event, error) {
	event, err := s.repo.Event.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("查询日程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.EventDate != nil {
		eventDate, err := parseDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		event.EventDate = eventDate
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = *req.Description
	}

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("更新日程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Event.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		s.logger.Error("查询日程失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Event.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除日程失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
