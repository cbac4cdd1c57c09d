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

var (
	ErrTimetableEntryNotFound = errors.New("课程表条目不存在")
	ErrTimetableTimeInvalid   = errors.New("课程结束时间必须晚于开始时间")
)

// TimetableService 课程表业务接口
type TimetableService interface {
	Create(ctx context.Context, userID string, req *dto.CreateTimetableEntryRequest) (*model.TimetableEntry, error)
	List(ctx context.Context, userID, semesterID string) ([]model.TimetableEntry, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateTimetableEntryRequest) (*model.TimetableEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type timetableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimetableService 创建 TimetableService 实例
func NewTimetableService(repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, logger: logger}
}

func (s *timetableService) Create(ctx context.Context, userID string, req *dto.CreateTimetableEntryRequest) (*model.TimetableEntry, error) {
	semesterID, err := resolveSemesterID(ctx, s.repo, userID, req.SemesterID)
	if err != nil {
		return nil, err
	}

	// "HH:MM" 串按字典序比较即时间序
	if req.EndTime <= req.StartTime {
		return nil, ErrTimetableTimeInvalid
	}

	entry := &model.TimetableEntry{
		UserID:     userID,
		SemesterID: semesterID,
		Subject:    req.Subject,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Location:   req.Location,
		Color:      req.Color,
	}

	if err := s.repo.Timetable.Create(ctx, entry); err != nil {
		s.logger.Error("创建课程表条目失败", zap.Error(err))
		return nil, err
	}

	return entry, nil
}

func (s *timetableService) List(ctx context.Context, userID, semesterID string) ([]model.TimetableEntry, error) {
	resolved, err := resolveSemesterID(ctx, s.repo, userID, semesterID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.Timetable.ListBySemester(ctx, userID, resolved)
	if err != nil {
		s.logger.Error("列出课程表失败", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *timetableService) Update(ctx context.Context, userID, id string, req *dto.UpdateTimetableEntryRequest) (*model.TimetableEntry, error) {
	entry, err := s.repo.Timetable.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableEntryNotFound
		}
		s.logger.Error("查询课程表条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Subject != nil {
		entry.Subject = *req.Subject
	}
	if req.DayOfWeek != nil {
		entry.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		entry.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		entry.EndTime = *req.EndTime
	}
	if entry.EndTime <= entry.StartTime {
		return nil, ErrTimetableTimeInvalid
	}
	if req.Location != nil {
		entry.Location = *req.Location
	}
	if req.Color != nil {
		entry.Color = *req.Color
	}

	if err := s.repo.Timetable.Update(ctx, entry); err != nil {
		s.logger.Error("更新课程表条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return entry, nil
}

func (s *timetableService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Timetable.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimetableEntryNotFound
		}
		s.logger.Error("查询课程表条目失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Timetable.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除课程表条目失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
