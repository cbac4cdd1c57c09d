package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/service"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/response"
)

// TransactionHandler 收支记录模块 HTTP 处理器
type TransactionHandler struct {
	transactionSvc service.TransactionService
}

// NewTransactionHandler 创建 TransactionHandler
func NewTransactionHandler(transactionSvc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionSvc: transactionSvc}
}

// List 获取收支记录列表
// GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	txs, err := h.transactionSvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleTransactionError(c, err)
		return
	}

	response.OK(c, gin.H{"list": txs})
}

// Create 创建收支记录
// POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tx, err := h.transactionSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleTransactionError(c, err)
		return
	}

	response.Created(c, tx)
}

// Update 更新收支记录
// PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "记录ID不能为空")
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tx, err := h.transactionSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleTransactionError(c, err)
		return
	}

	response.OK(c, tx)
}

// Delete 删除收支记录
// DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "记录ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.transactionSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleTransactionError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleTransactionError 统一处理收支记录模块业务错误
func (h *TransactionHandler) handleTransactionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTransactionNotFound):
		response.NotFound(c, 22001, "收支记录不存在")
	case errors.Is(err, service.ErrWalletNotFound):
		response.NotFound(c, 21001, "钱包不存在")
	case errors.Is(err, service.ErrDateInvalid):
		response.BadRequest(c, 10006, "日期格式无效")
	default:
		response.InternalError(c)
	}
}
