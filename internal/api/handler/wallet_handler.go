package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/service"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/response"
)

// WalletHandler 钱包模块 HTTP 处理器
type WalletHandler struct {
	walletSvc service.WalletService
}

// NewWalletHandler 创建 WalletHandler
func NewWalletHandler(walletSvc service.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// List 获取钱包列表
// GET /api/wallets
func (h *WalletHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	wallets, err := h.walletSvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleWalletError(c, err)
		return
	}

	response.OK(c, gin.H{"list": wallets})
}

// Create 创建钱包
// POST /api/wallets
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	wallet, err := h.walletSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleWalletError(c, err)
		return
	}

	response.Created(c, wallet)
}

// Update 更新钱包
// PUT /api/wallets/:id
func (h *WalletHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "钱包ID不能为空")
		return
	}

	var req dto.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	wallet, err := h.walletSvc.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleWalletError(c, err)
		return
	}

	response.OK(c, wallet)
}

// Delete 删除钱包
// DELETE /api/wallets/:id
func (h *WalletHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "钱包ID不能为空")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.walletSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleWalletError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleWalletError 统一处理钱包模块业务错误
func (h *WalletHandler) handleWalletError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWalletNotFound):
		response.NotFound(c, 21001, "钱包不存在")
	default:
		response.InternalError(c)
	}
}
