package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoData       = errors.New("所选区间内无收支记录")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 收支记录导出为 Excel (.xlsx)，可按日期区间过滤
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - Excel 末尾附收入/支出/结余汇总行
type ExportService interface {
	// ExportTransactions 导出收支记录为 Excel，from/to 为零值时不限制区间
	ExportTransactions(ctx context.Context, userID string, from, to time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportTransactions(ctx context.Context, userID string, from, to time.Time) (*bytes.Buffer, string, error) {
	var (
		txs []model.Transaction
		err error
	)
	if from.IsZero() && to.IsZero() {
		txs, err = s.repo.Transaction.List(ctx, userID)
	} else {
		if to.IsZero() {
			to = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		}
		txs, err = s.repo.Transaction.ListByDateRange(ctx, userID, from, to)
	}
	if err != nil {
		s.logger.Error("查询收支记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(txs) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "收支明细"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 8)
	f.SetColWidth(sheetName, "C", "C", 14)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 30)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	headers := []string{"日期", "类型", "分类", "金额", "备注"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cellRef := fmt.Sprintf("%s1", col)
		f.SetCellValue(sheetName, cellRef, h)
		f.SetCellStyle(sheetName, cellRef, cellRef, headerStyle)
	}

	typeNames := map[string]string{"income": "收入", "expense": "支出"}

	// 数据行 + 汇总
	var totalIncome, totalExpense float64
	row := 2
	for _, tx := range txs {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tx.OccurredOn.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), typeNames[tx.TxType])
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), tx.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), tx.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), tx.Note)
		if tx.TxType == "income" {
			totalIncome += tx.Amount
		} else {
			totalExpense += tx.Amount
		}
		row++
	}

	row++ // 空一行
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "收入合计")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), totalIncome)
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "支出合计")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), totalExpense)
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "结余")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), totalIncome-totalExpense)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("收支明细_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}
