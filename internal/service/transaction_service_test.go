package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
)

func setupTestTransactionService() (TransactionService, *mockWalletRepo, *mockTransactionRepo) {
	walletRepo := newMockWalletRepo()
	txRepo := newMockTransactionRepo()
	repo := &repository.Repository{
		Wallet:      walletRepo,
		Transaction: txRepo,
	}
	return NewTransactionService(repo, zap.NewNop()), walletRepo, txRepo
}

func TestTransactionService_Create_WithoutWallet(t *testing.T) {
	svc, _, _ := setupTestTransactionService()

	tx, err := svc.Create(context.Background(), "user-001", &dto.CreateTransactionRequest{
		TxType:     "expense",
		Category:   "餐饮",
		Amount:     25.5,
		OccurredOn: "2026-08-30",
		Note:       "午饭",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if tx.WalletID != nil {
		t.Errorf("未关联钱包时 WalletID 应为 nil，实际: %v", tx.WalletID)
	}
}

func TestTransactionService_Create_ValidatesWalletOwnership(t *testing.T) {
	svc, walletRepo, _ := setupTestTransactionService()

	walletRepo.wallets["wal-own"] = &model.Wallet{WalletID: "wal-own", UserID: "user-001", Name: "现金"}
	walletRepo.wallets["wal-other"] = &model.Wallet{WalletID: "wal-other", UserID: "user-002", Name: "他人钱包"}

	tx, err := svc.Create(context.Background(), "user-001", &dto.CreateTransactionRequest{
		TxType:     "income",
		Category:   "兼职",
		Amount:     300,
		OccurredOn: "2026-08-30",
		WalletID:   "wal-own",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if tx.WalletID == nil || *tx.WalletID != "wal-own" {
		t.Errorf("WalletID 不符: %v", tx.WalletID)
	}

	// 他人钱包视为不存在
	_, err = svc.Create(context.Background(), "user-001", &dto.CreateTransactionRequest{
		TxType:     "expense",
		Category:   "其它",
		Amount:     10,
		OccurredOn: "2026-08-30",
		WalletID:   "wal-other",
	})
	if !errors.Is(err, ErrWalletNotFound) {
		t.Errorf("期望 ErrWalletNotFound，实际: %v", err)
	}
}

func TestTransactionService_Create_BadDate(t *testing.T) {
	svc, _, _ := setupTestTransactionService()

	_, err := svc.Create(context.Background(), "user-001", &dto.CreateTransactionRequest{
		TxType:     "expense",
		Category:   "餐饮",
		Amount:     10,
		OccurredOn: "08/30/2026",
	})
	if !errors.Is(err, ErrDateInvalid) {
		t.Errorf("期望 ErrDateInvalid，实际: %v", err)
	}
}

func TestTransactionService_Update_WalletUnchanged(t *testing.T) {
	svc, walletRepo, _ := setupTestTransactionService()

	walletRepo.wallets["wal-1"] = &model.Wallet{WalletID: "wal-1", UserID: "user-001", Name: "现金"}

	tx, _ := svc.Create(context.Background(), "user-001", &dto.CreateTransactionRequest{
		TxType:     "expense",
		Category:   "交通",
		Amount:     4,
		OccurredOn: "2026-08-30",
		WalletID:   "wal-1",
	})

	amount := 6.0
	result, err := svc.Update(context.Background(), "user-001", tx.TransactionID, &dto.UpdateTransactionRequest{
		Amount: &amount,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Amount != 6.0 {
		t.Errorf("金额未更新: %v", result.Amount)
	}
	// 钱包关联不在更新白名单内
	if result.WalletID == nil || *result.WalletID != "wal-1" {
		t.Errorf("钱包关联不应被改动: %v", result.WalletID)
	}
}

func TestTransactionService_List_NewestFirst(t *testing.T) {
	svc, _, _ := setupTestTransactionService()

	for _, d := range []string{"2026-08-01", "2026-08-15", "2026-08-10"} {
		if _, err := svc.Create(context.Background(), "user-001", &dto.CreateTransactionRequest{
			TxType: "expense", Category: "餐饮", Amount: 1, OccurredOn: d,
		}); err != nil {
			t.Fatalf("Create 应成功: %v", err)
		}
	}

	txs, err := svc.List(context.Background(), "user-001")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("期望 3 条记录，实际 %d", len(txs))
	}
	if txs[0].OccurredOn.Format("2006-01-02") != "2026-08-15" {
		t.Errorf("应按发生日期倒序，首条实际: %s", txs[0].OccurredOn.Format("2006-01-02"))
	}
}
