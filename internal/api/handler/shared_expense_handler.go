package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/service"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/response"
)

// SharedExpenseHandler 共同支出模块 HTTP 处理器
type SharedExpenseHandler struct {
	expenseSvc service.SharedExpenseService
}

// NewSharedExpenseHandler 创建 SharedExpenseHandler
func NewSharedExpenseHandler(expenseSvc service.SharedExpenseService) *SharedExpenseHandler {
	return &SharedExpenseHandler{expenseSvc: expenseSvc}
}

// List 获取共同支出列表
// GET /api/shared-expenses
func (h *SharedExpenseHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	expenses, err := h.expenseSvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleSharedExpenseError(c, err)
		return
	}

	response.OK(c, gin.H{"list": expenses})
}

// Create 创建共同支出
// POST /api/shared-expenses
func (h *SharedExpenseHandler) Create(c *gin.Context) {
	var req dto.CreateSharedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleSharedExpenseError(c, err)
		return
	}

	response.Created(c, expense)
}

// Update 更新共同支出
// PUT /api/shared-expenses/:id
func (h *SharedExpenseHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "共同支出ID不能为空")
		return
	}

	var req dto.UpdateSharedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleSharedExpenseError(c, err)
		return
	}

	response.OK(c, expense)
}

// Delete 删除共同支出
// DELETE /api/shared-expenses/:id
func (h *SharedExpenseHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "共同支出ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.expenseSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleSharedExpenseError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleSharedExpenseError 统一处理共同支出模块业务错误
func (h *SharedExpenseHandler) handleSharedExpenseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSharedExpenseNotFound):
		response.NotFound(c, 27001, "共同支出不存在")
	case errors.Is(err, service.ErrDateInvalid):
		response.BadRequest(c, 10006, "日期格式无效")
	default:
		response.InternalError(c)
	}
}
