package handler

import (
	"strconv"

	"pata-go/internal/api/response"
	"pata-go/internal/service"
	"pata-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaxonomyHandler struct {
	taxonomyService *service.TaxonomyService
}

func NewTaxonomyHandler(taxonomyService *service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

// ListPetTypes 获取宠物类别列表
// @Summary 获取宠物类别列表
// @Tags 类别
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.PetTypeInfo} "获取成功"
// @Router /pet-types [get]
func (h *TaxonomyHandler) ListPetTypes(c *gin.Context) {
	items, err := h.taxonomyService.ListPetTypes()
	if err != nil {
		logger.Error("List pet types failed", zap.Error(err))
		response.InternalError(c, "获取宠物类别失败")
		return
	}

	response.OK(c, "获取宠物类别成功", items)
}

// ListBreedTypes 获取品种列表
// @Summary 获取品种列表
// @Tags 类别
// @Produce json
// @Param pet_type_id query int false "类别ID，省略时返回全部"
// @Success 200 {object} response.Response{data=[]dto.BreedTypeInfo} "获取成功"
// @Router /breed-types [get]
func (h *TaxonomyHandler) ListBreedTypes(c *gin.Context) {
	petTypeID, _ := strconv.ParseInt(c.DefaultQuery("pet_type_id", "0"), 10, 64)

	items, err := h.taxonomyService.ListBreedTypes(petTypeID)
	if err != nil {
		logger.Error("List breed types failed", zap.Error(err))
		response.InternalError(c, "获取品种列表失败")
		return
	}

	response.OK(c, "获取品种列表成功", items)
}
