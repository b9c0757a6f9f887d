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

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RequestOTP 发送登录验证码
// @Summary 发送登录验证码
// @Description 验证码发送到邮箱，带重发冷却
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.OTPRequestRequest true "邮箱"
// @Success 200 {object} response.Response "发送成功"
// @Failure 400 {object} response.Response "发送过于频繁"
// @Router /auth/otp/request [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req dto.OTPRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	if err := h.authService.RequestOTP(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrOTPCooldown) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Request OTP failed", zap.Error(err))
		response.InternalError(c, "验证码发送失败，请稍后重试")
		return
	}

	response.OK(c, "验证码已发送", nil)
}

// VerifyOTP 校验验证码并登录
// @Summary 校验验证码并登录
// @Description 验证码单次有效，首次登录自动注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.OTPVerifyRequest true "邮箱与验证码"
// @Success 200 {object} response.Response{data=dto.TokenData} "登录成功"
// @Failure 400 {object} response.Response "验证码错误或已过期"
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.authService.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOTPExpired), errors.Is(err, service.ErrOTPInvalid):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Verify OTP failed", zap.Error(err))
			response.InternalError(c, "登录失败，请稍后重试")
		}
		return
	}

	response.OK(c, "登录成功", data)
}

// Me 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get current user failed", zap.Error(err))
		response.InternalError(c, "获取用户信息失败")
		return
	}

	response.OK(c, "获取用户信息成功", info)
}
