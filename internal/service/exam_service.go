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

var ErrExamNotFound = errors.New("考试不存在")

// ExamService 考试业务接口
type ExamService interface {
	Create(ctx context.Context, userID string, req *dto.CreateExamRequest) (*model.Exam, error)
	List(ctx context.Context, userID, semesterID string) ([]model.Exam, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateExamRequest) (*model.Exam, error)
	Delete(ctx context.Context, userID, id string) error
}

type examService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExamService 创建 ExamService 实例
func NewExamService(repo *repository.Repository, logger *zap.Logger) ExamService {
	return &examService{repo: repo, logger: logger}
}

func (s *examService) Create(ctx context.Context, userID string, req *dto.CreateExamRequest) (*model.Exam, error) {
	semesterID, err := resolveSemesterID(ctx, s.repo, userID, req.SemesterID)
	if err != nil {
		return nil, err
	}

	examDate, err := parseDate(req.ExamDate)
	if err != nil {
		return nil, err
	}

	exam := &model.Exam{
		UserID:     userID,
		SemesterID: semesterID,
		Subject:    req.Subject,
		ExamDate:   examDate,
		StartTime:  req.StartTime,
		Location:   req.Location,
		Notes:      req.Notes,
	}

	if err := s.repo.Exam.Create(ctx, exam); err != nil {
		s.logger.Error("创建考试失败", zap.Error(err))
		return nil, err
	}

	return exam, nil
}

func (s *examService) List(ctx context.Context, userID, semesterID string) ([]model.Exam, error) {
	resolved, err := resolveSemesterID(ctx, s.repo, userID, semesterID)
	if err != nil {
		return nil, err
	}

	exams, err := s.repo.Exam.ListBySemester(ctx, userID, resolved)
	if err != nil {
		s.logger.Error("列出考试失败", zap.Error(err))
		return nil, err
	}
	return exams, nil
}

func (s *examService) Update(ctx context.Context, userID, id string, req *dto.UpdateExamRequest) (*model.Exam, error) {
	exam, err := s.repo.Exam.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		s.logger.Error("查询考试失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Subject != nil {
		exam.Subject = *req.Subject
	}
	if req.ExamDate != nil {
		examDate, err := parseDate(*req.ExamDate)
		if err != nil {
			return nil, err
		}
		exam.ExamDate = examDate
	}
	if req.StartTime != nil {
		exam.StartTime = *req.StartTime
	}
	if req.Location != nil {
		exam.Location = *req.Location
	}
	if req.Notes != nil {
		exam.Notes = *req.Notes
	}

	if err := s.repo.Exam.Update(ctx, exam); err != nil {
		s.logger.Error("更新考试失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return exam, nil
}

func (s *examService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Exam.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExamNotFound
		}
		s.logger.Error("查询考试失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Exam.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除考试失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
