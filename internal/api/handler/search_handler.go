package handler

import (
	"pata-go/internal/api/response"
	"pata-go/internal/service"
	"pata-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Suggest 宠物名称联想
// @Summary 宠物名称联想
// @Description ES 前缀联想，ES 不可用时降级到数据库查询
// @Tags 宠物
// @Produce json
// @Param q query string true "名称前缀"
// @Success 200 {object} response.Response{data=dto.SuggestData} "查询成功"
// @Router /animals/suggest [get]
func (h *SearchHandler) Suggest(c *gin.Context) {
	data, err := h.searchService.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		logger.Error("Suggest animal names failed", zap.Error(err))
		response.InternalError(c, "联想查询失败")
		return
	}

	response.OK(c, "联想查询成功", data)
}
