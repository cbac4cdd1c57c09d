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

var ErrTaskNotFound = errors.New("待办不存在")

// TaskService 待办业务接口
type TaskService interface {
	Create(ctx context.Context, userID string, req *dto.CreateTaskRequest) (*model.Task, error)
	List(ctx context.Context, userID string) ([]model.Task, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateTaskRequest) (*model.Task, error)
	Delete(ctx context.Context, userID, id string) error
}

type taskService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTaskService 创建 TaskService 实例
func NewTaskService(repo *repository.Repository, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, logger: logger}
}

func (s *taskService) Create(ctx context.Context, userID string, req *dto.CreateTaskRequest) (*model.Task, error) {
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	task := &model.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
	}

	if req.DueDate != "" {
		dueDate, err := parseDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = &dueDate
	}

	if err := s.repo.Task.Create(ctx, task); err != nil {
		s.logger.Error("创建待办失败", zap.Error(err))
		return nil, err
	}

	return task, nil
}

func (s *taskService) List(ctx context.Context, userID string) ([]model.Task, error) {
	tasks, err := s.repo.Task.List(ctx, userID)
	if err != nil {
		s.logger.Error("列出待办失败", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (s *taskService) Update(ctx context.Context, userID, id string, req *dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.repo.Task.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("查询待办失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil // 显式清除截止日期
		} else {
			dueDate, err := parseDate(*req.DueDate)
			if err != nil {
				return nil, err
			}
			task.DueDate = &dueDate
		}
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := s.repo.Task.Update(ctx, task); err != nil {
		s.logger.Error("更新待办失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return task, nil
}

func (s *taskService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Task.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		s.logger.Error("查询待办失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Task.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除待办失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
