package dto

// OTPRequestRequest 发送验证码请求
type OTPRequestRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// OTPVerifyRequest 校验验证码请求
type OTPVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID     int64   `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// TokenData 登录成功返回的令牌数据
type TokenData struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"`
	User      UserInfo `json:"user"`
}
