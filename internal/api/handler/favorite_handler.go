package handler

import (
	"errors"

	"pata-go/internal/api/dto"
	"pata-go/internal/api/middleware"
	"pata-go/internal/api/response"
	"pata-go/internal/service"
	"pata-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
	animalService   *service.AnimalService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService, animalService *service.AnimalService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService, animalService: animalService}
}

// Toggle 批量翻转收藏状态
// @Summary 批量翻转收藏状态
// @Description 对每个宠物ID做一次收藏翻转：已收藏取消、未收藏新建；任一ID不存在则整体失败
// @Tags 收藏
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FavoriteToggleRequest true "宠物ID列表"
// @Success 200 {object} response.Response{data=dto.FavoriteToggleData} "操作成功"
// @Failure 400 {object} response.Response "ID列表为空"
// @Failure 404 {object} response.Response "存在无效的宠物ID"
// @Router /favorite-animal [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.FavoriteToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.favoriteService.Toggle(userID, req.AnimalIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyAnimalIDs):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrAnimalNotFound):
			response.NotFound(c, err.Error())
		default:
			logger.Error("Toggle favorites failed", zap.Error(err))
			response.InternalError(c, "操作失败，请稍后重试")
		}
		return
	}

	response.OK(c, "收藏状态已更新", data)
}

// ListMyFavorites 获取我收藏的宠物列表
// @Summary 获取我收藏的宠物列表
// @Description 按收藏时间倒序，每条 isFavorite 均为 true
// @Tags 收藏
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]dto.AnimalInfo} "获取成功"
// @Router /favorite-animals [get]
func (h *FavoriteHandler) ListMyFavorites(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	page, limit := parsePagination(c)

	items, total, err := h.animalService.ListFavorites(userID, page, limit)
	if err != nil {
		logger.Error("List my favorites failed", zap.Error(err))
		response.InternalError(c, "获取收藏列表失败")
		return
	}

	response.OKPage(c, "获取收藏列表成功", total, page, limit, items)
}
