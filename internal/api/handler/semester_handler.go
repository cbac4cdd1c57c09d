package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/service"
	pkgerrors "github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/errors"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/response"
)

// SemesterHandler 学期模块 HTTP 处理器
// 同时承载学期事件子资源（/api/semester/events）
type SemesterHandler struct {
	semesterSvc service.SemesterService
	eventSvc    service.SemesterEventService
}

// NewSemesterHandler 创建 SemesterHandler
func NewSemesterHandler(semesterSvc service.SemesterService, eventSvc service.SemesterEventService) *SemesterHandler {
	return &SemesterHandler{semesterSvc: semesterSvc, eventSvc: eventSvc}
}

// GetConfig 获取当前活动学期
// GET /api/semester/config
// 没有活动学期时 data 为 null（新用户的正常状态，不是 404）
func (h *SemesterHandler) GetConfig(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semester, err := h.semesterSvc.GetActive(c.Request.Context(), userID)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, semester)
}

// CreateConfig 创建并激活新学期
// POST /api/semester/config
func (h *SemesterHandler) CreateConfig(c *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semester, err := h.semesterSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.Created(c, semester)
}

// UpdateConfig 更新学期（白名单字段；is_active=true 走激活路径）
// PUT /api/semester/config/:id
func (h *SemesterHandler) UpdateConfig(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	var req dto.UpdateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semester, err := h.semesterSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, semester)
}

// ListAll 获取全部未归档学期
// GET /api/semester/all
func (h *SemesterHandler) ListAll(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semesters, err := h.semesterSvc.ListAll(c.Request.Context(), userID)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, gin.H{"list": semesters})
}

// ListArchived 获取已归档学期
// GET /api/semester/archived
func (h *SemesterHandler) ListArchived(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semesters, err := h.semesterSvc.ListArchived(c.Request.Context(), userID)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, gin.H{"list": semesters})
}

// History 获取历史学期（已归档且结束日期已过）
// GET /api/semester/history
func (h *SemesterHandler) History(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semesters, err := h.semesterSvc.History(c.Request.Context(), userID)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, gin.H{"list": semesters})
}

// GetSemester 获取学期详情
// GET /api/semester/:id
func (h *SemesterHandler) GetSemester(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "学期ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semester, err := h.semesterSvc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, semester)
}

// CheckExpiration 按需过期检查
// POST /api/semester/check-expiration
func (h *SemesterHandler) CheckExpiration(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.semesterSvc.CheckExpiration(c.Request.Context(), userID)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, result)
}

// Archive 归档指定学期（必须在请求体中显式给出 semester_id）
// POST /api/semester/archive
func (h *SemesterHandler) Archive(c *gin.Context) {
	var req dto.ArchiveSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semester, err := h.semesterSvc.Archive(c.Request.Context(), userID, req.SemesterID)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, semester)
}

// ── 学期事件子资源 ──

// ListEvents 获取学期事件
// GET /api/semester/events?semester_id=
func (h *SemesterHandler) ListEvents(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	events, err := h.eventSvc.List(c.Request.Context(), userID, c.Query("semester_id"))
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, gin.H{"list": events})
}

// CreateEvent 创建学期事件
// POST /api/semester/events
func (h *SemesterHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateSemesterEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	event, err := h.eventSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.Created(c, event)
}

// DeleteEvent 删除学期事件
// DELETE /api/semester/events/:id
func (h *SemesterHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "事件ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleSemesterError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleSemesterError 统一处理学期模块业务错误
func (h *SemesterHandler) handleSemesterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, "学期不存在")
	case errors.Is(err, service.ErrSemesterDateInvalid):
		response.BadRequest(c, 14002, "学期日期无效")
	case errors.Is(err, service.ErrSemesterArchived):
		response.BadRequest(c, 14003, "已归档学期不能再次激活")
	case errors.Is(err, pkgerrors.ErrActiveConflict):
		response.Conflict(c, 14004, "当前学期状态已被其他操作修改，请重试")
	case errors.Is(err, service.ErrNoActiveSemester):
		response.BadRequest(c, 14005, "当前没有活动学期")
	case errors.Is(err, service.ErrSemesterEventNotFound):
		response.NotFound(c, 18001, "学期事件不存在")
	case errors.Is(err, service.ErrDateInvalid):
		response.BadRequest(c, 10006, "日期格式无效")
	default:
		response.InternalError(c)
	}
}
