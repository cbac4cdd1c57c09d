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

var ErrWalletNotFound = errors.New("钱包不存在")

// WalletService 钱包业务接口
type WalletService interface {
	Create(ctx context.Context, userID string, req *dto.CreateWalletRequest) (*model.Wallet, error)
	List(ctx context.Context, userID string) ([]model.Wallet, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateWalletRequest) (*model.Wallet, error)
	Delete(ctx context.Context, userID, id string) error
}

type walletService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWalletService 创建 WalletService 实例
func NewWalletService(repo *repository.Repository, logger *zap.Logger) WalletService {
	return &walletService{repo: repo, logger: logger}
}

func (s *walletService) Create(ctx context.Context, userID string, req *dto.CreateWalletRequest) (*model.Wallet, error) {
	currency := req.Currency
	if currency == "" {
		currency = "CNY"
	}

	wallet := &model.Wallet{
		UserID:   userID,
		Name:     req.Name,
		Currency: currency,
		Balance:  req.Balance,
	}

	if err := s.repo.Wallet.Create(ctx, wallet); err != nil {
		s.logger.Error("创建钱包失败", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *walletService) List(ctx context.Context, userID string) ([]model.Wallet, error) {
	wallets, err := s.repo.Wallet.List(ctx, userID)
	if err != nil {
		s.logger.Error("列出钱包失败", zap.Error(err))
		return nil, err
	}
	return wallets, nil
}

func (s *walletService) Update(ctx context.Context, userID, id string, req *dto.UpdateWalletRequest) (*model.Wallet, error) {
	wallet, err := s.repo.Wallet.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		s.logger.Error("查询钱包失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		wallet.Name = *req.Name
	}
	if req.Currency != nil {
		wallet.Currency = *req.Currency
	}
	if req.Balance != nil {
		wallet.Balance = *req.Balance
	}

	if err := s.repo.Wallet.Update(ctx, wallet); err != nil {
		s.logger.Error("更新钱包失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *walletService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Wallet.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWalletNotFound
		}
		s.logger.Error("查询钱包失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Wallet.Delete(ctx, userID, id); err != nil {
		s.logger.Error("删除钱包失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
