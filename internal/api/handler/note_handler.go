package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/service"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/response"
)

// NoteHandler 笔记模块 HTTP 处理器
type NoteHandler struct {
	noteSvc service.NoteService
}

// NewNoteHandler 创建 NoteHandler
func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

// List 获取笔记列表
// GET /api/notes
func (h *NoteHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	notes, err := h.noteSvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.OK(c, gin.H{"list": notes})
}

// Create 创建笔记
// POST /api/notes
func (h *NoteHandler) Create(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	note, err := h.noteSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.Created(c, note)
}

// Update 更新笔记
// PUT /api/notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "笔记ID不能为空")
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	note, err := h.noteSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.OK(c, note)
}

// Delete 删除笔记
// DELETE /api/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "笔记ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.noteSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleNoteError 统一处理笔记模块业务错误
func (h *NoteHandler) handleNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoteNotFound):
		response.NotFound(c, 23001, "笔记不存在")
	default:
		response.InternalError(c)
	}
}
