package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/service"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/response"
)

// HabitHandler 习惯打卡模块 HTTP 处理器
type HabitHandler struct {
	habitSvc service.HabitService
}

// NewHabitHandler 创建 HabitHandler
func NewHabitHandler(habitSvc service.HabitService) *HabitHandler {
	return &HabitHandler{habitSvc: habitSvc}
}

// List 获取习惯列表
// GET /api/habits
func (h *HabitHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	habits, err := h.habitSvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleHabitError(c, err)
		return
	}

	response.OK(c, gin.H{"list": habits})
}

// Create 创建习惯
// POST /api/habits
func (h *HabitHandler) Create(c *gin.Context) {
	var req dto.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	habit, err := h.habitSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleHabitError(c, err)
		return
	}

	response.Created(c, habit)
}

// Update 更新习惯
// PUT /api/habits/:id
func (h *HabitHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "习惯ID不能为空")
		return
	}

	var req dto.UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	habit, err := h.habitSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleHabitError(c, err)
		return
	}

	response.OK(c, habit)
}

// Toggle 切换当天打卡状态
// POST /api/habits/:id/toggle
func (h *HabitHandler) Toggle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "习惯ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	habit, err := h.habitSvc.Toggle(c.Request.Context(), userID, id)
	if err != nil {
		h.handleHabitError(c, err)
		return
	}

	response.OK(c, habit)
}

// Delete 删除习惯
// DELETE /api/habits/:id
func (h *HabitHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "习惯ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.habitSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleHabitError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleHabitError 统一处理习惯模块业务错误
func (h *HabitHandler) handleHabitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHabitNotFound):
		response.NotFound(c, 24001, "习惯不存在")
	default:
		response.InternalError(c)
	}
}
