package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/service"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/response"
)

// DebtHandler 债务模块 HTTP 处理器
type DebtHandler struct {
	debtSvc service.DebtService
}

// NewDebtHandler 创建 DebtHandler
func NewDebtHandler(debtSvc service.DebtService) *DebtHandler {
	return &DebtHandler{debtSvc: debtSvc}
}

// List 获取债务列表
// GET /api/debts
func (h *DebtHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	debts, err := h.debtSvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleDebtError(c, err)
		return
	}

	response.OK(c, gin.H{"list": debts})
}

// Create 创建债务
// POST /api/debts
func (h *DebtHandler) Create(c *gin.Context) {
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	debt, err := h.debtSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleDebtError(c, err)
		return
	}

	response.Created(c, debt)
}

// Update 更新债务
// PUT /api/debts/:id
func (h *DebtHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "债务ID不能为空")
		return
	}

	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	debt, err := h.debtSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleDebtError(c, err)
		return
	}

	response.OK(c, debt)
}

// Delete 删除债务
// DELETE /api/debts/:id
func (h *DebtHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "债务ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.debtSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleDebtError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleDebtError 统一处理债务模块业务错误
func (h *DebtHandler) handleDebtError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDebtNotFound):
		response.NotFound(c, 25001, "债务不存在")
	case errors.Is(err, service.ErrDateInvalid):
		response.BadRequest(c, 10006, "日期格式无效")
	default:
		response.InternalError(c)
	}
}
