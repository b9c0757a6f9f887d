package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"pata-go/internal/api/dto"
	"pata-go/internal/config"
	"pata-go/internal/model"
	"pata-go/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("用户不存在")
	ErrOTPCooldown  = errors.New("验证码发送过于频繁，请稍后再试")
	ErrOTPExpired   = errors.New("验证码已过期，请重新获取")
	ErrOTPInvalid   = errors.New("验证码错误")
)

// UserStore 用户存储接口
type UserStore interface {
	GetByID(id int64) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	Create(user *model.User) error
}

// ChallengeStore 验证码挑战存储接口（Redis 实现）
type ChallengeStore interface {
	Put(ctx context.Context, email, codeHash string, ttl time.Duration) error
	Get(ctx context.Context, email string) (hash string, found bool, err error)
	Delete(ctx context.Context, email string) error
	SetCooldown(ctx context.Context, email string, d time.Duration) error
	InCooldown(ctx context.Context, email string) (bool, error)
}

// OTPMailer 验证码投递接口
type OTPMailer interface {
	SendOTP(ctx context.Context, email, code string, ttl time.Duration) error
}

type AuthService struct {
	users      UserStore
	challenges ChallengeStore
	mailer     OTPMailer
}

func NewAuthService(users UserStore, challenges ChallengeStore, mailer OTPMailer) *AuthService {
	return &AuthService{users: users, challenges: challenges, mailer: mailer}
}

// RequestOTP 生成验证码并投递到邮箱
// 验证码只以 bcrypt 哈希形式进入 Redis，并带重发冷却
func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	inCooldown, err := s.challenges.InCooldown(ctx, email)
	if err != nil {
		return err
	}
	if inCooldown {
		return ErrOTPCooldown
	}

	otpCfg := config.GetOTP()
	code, err := utils.GenerateOTP(otpCfg.Length)
	if err != nil {
		return err
	}
	hash, err := utils.HashOTP(code)
	if err != nil {
		return err
	}

	if err := s.challenges.Put(ctx, email, hash, otpCfg.TTL()); err != nil {
		return err
	}
	if err := s.challenges.SetCooldown(ctx, email, otpCfg.CooldownDuration()); err != nil {
		return err
	}

	return s.mailer.SendOTP(ctx, email, code, otpCfg.TTL())
}

// VerifyOTP 校验验证码，首次登录自动注册，返回 JWT
// 验证码单次有效，校验通过即删除
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (*dto.TokenData, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, found, err := s.challenges.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrOTPExpired
	}

	if !utils.VerifyOTP(code, hash) {
		return nil, ErrOTPInvalid
	}

	if err := s.challenges.Delete(ctx, email); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// 首次通过验证码登录即注册
		user = &model.User{Email: email, Name: strings.SplitN(email, "@", 2)[0]}
		if err := s.users.Create(user); err != nil {
			return nil, err
		}
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: config.GetJWT().ExpireHours * 3600,
		User:      *toUserInfo(user),
	}, nil
}

// GetCurrentUser 根据用户 ID 获取用户信息
func (s *AuthService) GetCurrentUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
}
