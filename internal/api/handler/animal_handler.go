package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"pata-go/internal/api/dto"
	"pata-go/internal/api/middleware"
	"pata-go/internal/api/response"
	infraMinio "pata-go/internal/infra/minio"
	"pata-go/internal/service"
	"pata-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 宠物图片上传限制
const maxPhotoSize = 10 << 20 // 10MB

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type AnimalHandler struct {
	animalService *service.AnimalService
}

func NewAnimalHandler(animalService *service.AnimalService) *AnimalHandler {
	return &AnimalHandler{animalService: animalService}
}

// List 获取宠物列表
// @Summary 获取宠物列表
// @Description 无条件分页列表，可匿名访问；登录后附带收藏状态
// @Tags 宠物
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]dto.AnimalInfo} "获取成功"
// @Router /animals [get]
func (h *AnimalHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	userID := currentUserIDOrNil(c)

	items, total, err := h.animalService.List(service.BuildFilter(nil), page, limit, userID)
	if err != nil {
		logger.Error("List animals failed", zap.Error(err))
		response.InternalError(c, "获取宠物列表失败")
		return
	}

	response.OKPage(c, "获取宠物列表成功", total, page, limit, items)
}

// Search 条件搜索宠物
// @Summary 条件搜索宠物
// @Description 按名称/地址子串、性别、体型、年龄段、类别、品种筛选，可匿名访问
// @Tags 宠物
// @Accept json
// @Produce json
// @Param request body dto.AnimalSearchRequest true "搜索条件"
// @Success 200 {object} response.Response{data=[]dto.AnimalInfo} "搜索成功"
// @Router /animals/search [post]
func (h *AnimalHandler) Search(c *gin.Context) {
	var req dto.AnimalSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	page, limit := normalizePagination(req.Page, req.Limit)
	userID := currentUserIDOrNil(c)

	items, total, err := h.animalService.List(service.BuildFilter(&req), page, limit, userID)
	if err != nil {
		logger.Error("Search animals failed", zap.Error(err))
		response.InternalError(c, "搜索宠物失败")
		return
	}

	response.OKPage(c, "搜索宠物成功", total, page, limit, items)
}

// GetDetail 获取宠物详情
// @Summary 获取宠物详情
// @Tags 宠物
// @Produce json
// @Param id path int true "宠物ID"
// @Success 200 {object} response.Response{data=dto.AnimalInfo} "获取成功"
// @Failure 404 {object} response.Response "宠物不存在"
// @Router /animals/{id} [get]
func (h *AnimalHandler) GetDetail(c *gin.Context) {
	animalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的宠物ID")
		return
	}

	info, err := h.animalService.GetDetail(animalID, currentUserIDOrNil(c))
	if err != nil {
		handleAnimalError(c, err)
		return
	}

	response.OK(c, "获取宠物详情成功", info)
}

// Create 发布宠物
// @Summary 发布宠物
// @Tags 宠物
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnimalCreateRequest true "宠物信息"
// @Success 201 {object} response.Response{data=dto.AnimalInfo} "发布成功"
// @Failure 400 {object} response.Response "参数无效"
// @Router /animals [post]
func (h *AnimalHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.AnimalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.animalService.Create(userID, &req)
	if err != nil {
		handleAnimalError(c, err)
		return
	}

	response.Created(c, "发布宠物成功", info)
}

// Update 编辑宠物
// @Summary 编辑宠物
// @Description 仅发布者可编辑
// @Tags 宠物
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "宠物ID"
// @Param request body dto.AnimalUpdateRequest true "更新字段"
// @Success 200 {object} response.Response{data=dto.AnimalInfo} "更新成功"
// @Failure 403 {object} response.Response "非发布者"
// @Router /animals/{id} [put]
func (h *AnimalHandler) Update(c *gin.Context) {
	animalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的宠物ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.AnimalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.animalService.Update(userID, animalID, &req)
	if err != nil {
		handleAnimalError(c, err)
		return
	}

	response.OK(c, "更新宠物成功", info)
}

// UploadPhoto 上传宠物图片
// @Summary 上传宠物图片
// @Description 图片存入对象存储，公开 URL 追加到宠物图片列表
// @Tags 宠物
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "宠物ID"
// @Param photo formData file true "图片文件"
// @Success 200 {object} response.Response{data=dto.AnimalInfo} "上传成功"
// @Router /animals/{id}/photos [post]
func (h *AnimalHandler) UploadPhoto(c *gin.Context) {
	animalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的宠物ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	file, err := c.FormFile("photo")
	if err != nil {
		response.BadRequest(c, "缺少图片文件")
		return
	}
	if file.Size > maxPhotoSize {
		response.BadRequest(c, "图片大小不能超过 10MB")
		return
	}
	ext := filepath.Ext(file.Filename)
	if !allowedPhotoExts[ext] {
		response.BadRequest(c, "仅支持 jpg/jpeg/png/webp 格式")
		return
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Open uploaded photo failed", zap.Error(err))
		response.InternalError(c, "读取图片失败")
		return
	}
	defer src.Close()

	objectName := fmt.Sprintf("animals/%d/%d%s", animalID, time.Now().UnixNano(), ext)
	photoURL, err := infraMinio.UploadPhoto(c.Request.Context(), objectName, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		logger.Error("Upload photo to minio failed", zap.Error(err))
		response.InternalError(c, "上传图片失败")
		return
	}

	info, err := h.animalService.AppendImage(userID, animalID, photoURL)
	if err != nil {
		handleAnimalError(c, err)
		return
	}

	response.OK(c, "上传图片成功", info)
}

func handleAnimalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAnimalNotFound),
		errors.Is(err, service.ErrPetTypeNotFound),
		errors.Is(err, service.ErrBreedTypeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidEnumValue),
		errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrBreedTypeMismatch):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Animal operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}

// currentUserIDOrNil 可选认证接口的用户 ID，匿名时为 nil
func currentUserIDOrNil(c *gin.Context) *int64 {
	if userID, ok := middleware.GetCurrentUserID(c); ok {
		return &userID
	}
	return nil
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return normalizePagination(page, limit)
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
