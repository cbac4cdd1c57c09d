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

var ErrAssignmentNotFound = errors.New("作业不存在")

// AssignmentService 作业业务接口
type AssignmentService interface {
	Create(ctx context.Context, userID string, req *dto.CreateAssignmentRequest) (*model.Assignment, error)
	List(ctx context.Context, userID, semesterID string) ([]model.Assignment, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateAssignmentRequest) (*model.Assignment, error)
	Delete(ctx context.Context, userID, id string) error
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

func (s *assignmentService) Create(ctx context.Context, userID string, req *dto.CreateAssignmentRequest) (*model.Assignment, error) {
	semesterID, err := resolveSemesterID(ctx, s.repo, userID, req.SemesterID)
	if err != nil {
		return nil, err
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	assignment := &model.Assignment{
		UserID:     userID,
		SemesterID: semesterID,
		Title:      req.Title,
		Subject:    req.Subject,
		DueDate:    dueDate,
		Status:     status,
		Priority:   priority,
	}

	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		s.logger.Error("创建作业失败", zap.Error(err))
		return nil, err
	}

	return assignment, nil
}

func (s *assignmentService) List(ctx context.Context, userID, semesterID string) ([]model.Assignment, error) {
	resolved, err := resolveSemesterID(ctx, s.repo, userID, semesterID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListBySemester(ctx, userID, resolved)
	if err != nil {
		s.logger.Error("列出作业失败", zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

func (s *assignmentService) Update(ctx context.Context, userID, id string, req *dto.UpdateAssignmentRequest) (*model.Assignment, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询作业失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Subject != nil {
		assignment.Subject = *req.Subject
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		assignment.DueDate = dueDate
	}
	if req.Status != nil {
		assignment.Status = *req.Status
	}
	if req.Priority != nil {
		assignment.Priority = *req.Priority
	}

	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		s.logger.Error("更新作业失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return assignment, nil
}

func (s *assignmentService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Assignment.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		s.logger.Error("查询作业失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Assignment.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除作业失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
