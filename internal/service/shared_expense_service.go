package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/datatypes"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
)

var ErrSharedExpenseNotFound = errors.New("共同支出不存在")

// SharedExpenseService 共同支出业务接口
type SharedExpenseService interface {
	Create(ctx context.Context, userID string, req *dto.CreateSharedExpenseRequest) (*model.SharedExpense, error)
	List(ctx context.Context, userID string) ([]model.SharedExpense, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateSharedExpenseRequest) (*model.SharedExpense, error)
	Delete(ctx context.Context, userID, id string) error
}

type sharedExpenseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSharedExpenseService 创建 SharedExpenseService 实例
func NewSharedExpenseService(repo *repository.Repository, logger *zap.Logger) SharedExpenseService {
	return &sharedExpenseService{repo: repo, logger: logger}
}

func toParticipants(reqs []dto.ExpenseParticipantRequest) datatypes.JSONSlice[model.ExpenseParticipant] {
	participants := make([]model.ExpenseParticipant, 0, len(reqs))
	for _, p := range reqs {
		participants = append(participants, model.ExpenseParticipant{Name: p.Name, Share: p.Share})
	}
	return datatypes.NewJSONSlice(participants)
}

func (s *sharedExpenseService) Create(ctx context.Context, userID string, req *dto.CreateSharedExpenseRequest) (*model.SharedExpense, error) {
	occurredOn, err := parseDate(req.OccurredOn)
	if err != nil {
		return nil, err
	}

	expense := &model.SharedExpense{
		UserID:       userID,
		Title:        req.Title,
		TotalAmount:  req.TotalAmount,
		OccurredOn:   occurredOn,
		Participants: toParticipants(req.Participants),
	}

	if err := s.repo.SharedExpense.Create(ctx, expense); err != nil {
		s.logger.Error("创建共同支出失败", zap.Error(err))
		return nil, err
	}
	return expense, nil
}

func (s *sharedExpenseService) List(ctx context.Context, userID string) ([]model.SharedExpense, error) {
	expenses, err := s.repo.SharedExpense.List(ctx, userID)
	if err != nil {
		s.logger.Error("列出共同支出失败", zap.Error(err))
		return nil, err
	}
	return expenses, nil
}

func (s *sharedExpenseService) Update(ctx context.Context, userID, id string, req *dto.UpdateSharedExpenseRequest) (*model.SharedExpense, error) {
	expense, err := s.repo.SharedExpense.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSharedExpenseNotFound
		}
		s.logger.Error("查询共同支出失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		expense.Title = *req.Title
	}
	if req.TotalAmount != nil {
		expense.TotalAmount = *req.TotalAmount
	}
	if req.OccurredOn != nil {
		occurredOn, err := parseDate(*req.OccurredOn)
		if err != nil {
			return nil, err
		}
		expense.OccurredOn = occurredOn
	}
	if req.Participants != nil {
		expense.Participants = toParticipants(*req.Participants)
	}
	if req.Settled != nil {
		expense.Settled = *req.Settled
	}

	if err := s.repo.SharedExpense.Update(ctx, expense); err != nil {
		s.logger.Error("更新共同支出失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return expense, nil
}

func (s *sharedExpenseService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.SharedExpense.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSharedExpenseNotFound
		}
		s.logger.Error("查询共同支出失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.SharedExpense.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除共同支出失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
