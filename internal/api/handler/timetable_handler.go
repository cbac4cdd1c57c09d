package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/service"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/response"
)

// TimetableHandler 课程表模块 HTTP 处理器
type TimetableHandler struct {
	timetableSvc service.TimetableService
}

// NewTimetableHandler 创建 TimetableHandler
func NewTimetableHandler(timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// List 获取课程表条目
// GET /api/timetable?semester_id=
func (h *TimetableHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entries, err := h.timetableSvc.List(c.Request.Context(), userID, c.Query("semester_id"))
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// Create 创建课程表条目
// POST /api/timetable
func (h *TimetableHandler) Create(c *gin.Context) {
	var req dto.CreateTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entry, err := h.timetableSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}

	response.Created(c, entry)
}

// Update 更新课程表条目
// PUT /api/timetable/:id
func (h *TimetableHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "条目ID不能为空")
		return
	}

	var req dto.UpdateTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entry, err := h.timetableSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}

	response.OK(c, entry)
}

// Delete 删除课程表条目
// DELETE /api/timetable/:id
func (h *TimetableHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "条目ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.timetableSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleTimetableError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleTimetableError 统一处理课程表模块业务错误
func (h *TimetableHandler) handleTimetableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimetableEntryNotFound):
		response.NotFound(c, 15001, "课程表条目不存在")
	case errors.Is(err, service.ErrTimetableTimeInvalid):
		response.BadRequest(c, 15002, "结束时间必须晚于开始时间")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, "学期不存在")
	case errors.Is(err, service.ErrNoActiveSemester):
		response.BadRequest(c, 14005, "当前没有活动学期")
	default:
		response.InternalError(c)
	}
}
