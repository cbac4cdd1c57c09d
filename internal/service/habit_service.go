package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
)

var ErrHabitNotFound = errors.New("习惯不存在")

// HabitService 习惯打卡业务接口
type HabitService interface {
	Create(ctx context.Context, userID string, req *dto.CreateHabitRequest) (*model.Habit, error)
	List(ctx context.Context, userID string) ([]model.Habit, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateHabitRequest) (*model.Habit, error)
	Toggle(ctx context.Context, userID, id string) (*model.Habit, error)
	Delete(ctx context.Context, userID, id string) error
}

type habitService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewHabitService 创建 HabitService 实例
func NewHabitService(repo *repository.Repository, logger *zap.Logger) HabitService {
	return &habitService{repo: repo, logger: logger, now: time.Now}
}

func (s *habitService) Create(ctx context.Context, userID string, req *dto.CreateHabitRequest) (*model.Habit, error) {
	habit := &model.Habit{
		UserID:         userID,
		Name:           req.Name,
		Icon:           req.Icon,
		CompletedDates: model.StringArray{},
	}

	if err := s.repo.Habit.Create(ctx, habit); err != nil {
		s.logger.Error("创建习惯失败", zap.Error(err))
		return nil, err
	}
	return habit, nil
}

func (s *habitService) List(ctx context.Context, userID string) ([]model.Habit, error) {
	habits, err := s.repo.Habit.List(ctx, userID)
	if err != nil {
		s.logger.Error("列出习惯失败", zap.Error(err))
		return nil, err
	}
	return habits, nil
}

func (s *habitService) Update(ctx context.Context, userID, id string, req *dto.UpdateHabitRequest) (*model.Habit, error) {
	habit, err := s.repo.Habit.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		s.logger.Error("查询习惯失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		habit.Name = *req.Name
	}
	if req.Icon != nil {
		habit.Icon = *req.Icon
	}

	if err := s.repo.Habit.Update(ctx, habit); err != nil {
		s.logger.Error("更新习惯失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return habit, nil
}

// Toggle 切换当天打卡状态：已打卡则取消，未打卡则补上。
// 以 UTC 日期为准，同一天重复调用两次等于没有调用。
func (s *habitService) Toggle(ctx context.Context, userID, id string) (*model.Habit, error) {
	habit, err := s.repo.Habit.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		s.logger.Error("查询习惯失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	today := s.now().UTC().Format("2006-01-02")
	if habit.CompletedDates.Contains(today) {
		filtered := make(model.StringArray, 0, len(habit.CompletedDates))
		for _, d := range habit.CompletedDates {
			if d != today {
				filtered = append(filtered, d)
			}
		}
		habit.CompletedDates = filtered
	} else {
		habit.CompletedDates = append(habit.CompletedDates, today)
	}

	if err := s.repo.Habit.Update(ctx, habit); err != nil {
		s.logger.Error("更新习惯打卡失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return habit, nil
}

func (s *habitService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Habit.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHabitNotFound
		}
		s.logger.Error("查询习惯失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Habit.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除习惯失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
