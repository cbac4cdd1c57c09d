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

var ErrTransactionNotFound = errors.New("收支记录不存在")

// TransactionService 收支记录业务接口
type TransactionService interface {
	Create(ctx context.Context, userID string, req *dto.CreateTransactionRequest) (*model.Transaction, error)
	List(ctx context.Context, userID string) ([]model.Transaction, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateTransactionRequest) (*model.Transaction, error)
	Delete(ctx context.Context, userID, id string) error
}

type transactionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTransactionService 创建 TransactionService 实例
func NewTransactionService(repo *repository.Repository, logger *zap.Logger) TransactionService {
	return &transactionService{repo: repo, logger: logger}
}

func (s *transactionService) Create(ctx context.Context, userID string, req *dto.CreateTransactionRequest) (*model.Transaction, error) {
	occurredOn, err := parseDate(req.OccurredOn)
	if err != nil {
		return nil, err
	}

	tx := &model.Transaction{
		UserID:     userID,
		TxType:     req.TxType,
		Category:   req.Category,
		Amount:     req.Amount,
		OccurredOn: occurredOn,
		Note:       req.Note,
	}

	// 关联钱包时校验归属
	if req.WalletID != "" {
		if _, err := s.repo.Wallet.GetByID(ctx, userID, req.WalletID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrWalletNotFound
			}
			s.logger.Error("查询钱包失败", zap.String("wallet_id", req.WalletID), zap.Error(err))
			return nil, err
		}
		walletID := req.WalletID
		tx.WalletID = &walletID
	}

	if err := s.repo.Transaction.Create(ctx, tx); err != nil {
		s.logger.Error("创建收支记录失败", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) List(ctx context.Context, userID string) ([]model.Transaction, error) {
	txs, err := s.repo.Transaction.List(ctx, userID)
	if err != nil {
		s.logger.Error("列出收支记录失败", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func (s *transactionService) Update(ctx context.Context, userID, id string, req *dto.UpdateTransactionRequest) (*model.Transaction, error) {
	tx, err := s.repo.Transaction.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		s.logger.Error("查询收支记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.TxType != nil {
		tx.TxType = *req.TxType
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.OccurredOn != nil {
		occurredOn, err := parseDate(*req.OccurredOn)
		if err != nil {
			return nil, err
		}
		tx.OccurredOn = occurredOn
	}
	if req.Note != nil {
		tx.Note = *req.Note
	}

	if err := s.repo.Transaction.Update(ctx, tx); err != nil {
		s.logger.Error("更新收支记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Transaction.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTransactionNotFound
		}
		s.logger.Error("查询收支记录失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Transaction.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除收支记录失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
