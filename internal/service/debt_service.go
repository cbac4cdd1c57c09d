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

var ErrDebtNotFound = errors.New("债务不存在")

// DebtService 债务业务接口
type DebtService interface {
	Create(ctx context.Context, userID string, req *dto.CreateDebtRequest) (*model.Debt, error)
	List(ctx context.Context, userID string) ([]model.Debt, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateDebtRequest) (*model.Debt, error)
	Delete(ctx context.Context, userID, id string) error
}

type debtService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDebtService 创建 DebtService 实例
func NewDebtService(repo *repository.Repository, logger *zap.Logger) DebtService {
	return &debtService{repo: repo, logger: logger}
}

func (s *debtService) Create(ctx context.Context, userID string, req *dto.CreateDebtRequest) (*model.Debt, error) {
	debt := &model.Debt{
		UserID:       userID,
		Counterparty: req.Counterparty,
		Amount:       req.Amount,
		Direction:    req.Direction,
	}

	if req.DueDate != "" {
		dueDate, err := parseDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		debt.DueDate = &dueDate
	}

	if err := s.repo.Debt.Create(ctx, debt); err != nil {
		s.logger.Error("创建债务失败", zap.Error(err))
		return nil, err
	}
	return debt, nil
}

func (s *debtService) List(ctx context.Context, userID string) ([]model.Debt, error) {
	debts, err := s.repo.Debt.List(ctx, userID)
	if err != nil {
		s.logger.Error("列出债务失败", zap.Error(err))
		return nil, err
	}
	return debts, nil
}

func (s *debtService) Update(ctx context.Context, userID, id string, req *dto.UpdateDebtRequest) (*model.Debt, error) {
	debt, err := s.repo.Debt.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDebtNotFound
		}
		s.logger.Error("查询债务失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Counterparty != nil {
		debt.Counterparty = *req.Counterparty
	}
	if req.Amount != nil {
		debt.Amount = *req.Amount
	}
	if req.Direction != nil {
		debt.Direction = *req.Direction
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			debt.DueDate = nil
		} else {
			dueDate, err := parseDate(*req.DueDate)
			if err != nil {
				return nil, err
			}
			debt.DueDate = &dueDate
		}
	}
	if req.Settled != nil {
		debt.Settled = *req.Settled
	}

	if err := s.repo.Debt.Update(ctx, debt); err != nil {
		s.logger.Error("更新债务失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return debt, nil
}

func (s *debtService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Debt.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDebtNotFound
		}
		s.logger.Error("查询债务失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Debt.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除债务失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
