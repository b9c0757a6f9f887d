package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pata-go/internal/config"
	"pata-go/internal/model"

	"gorm.io/gorm"
)

// -------------------------
// 内存版依赖实现（仅测试用）
// -------------------------

type fakeUserStore struct {
	users  map[int64]model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]model.User{}, nextID: 1}
}

func (s *fakeUserStore) GetByID(id int64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) Create(user *model.User) error {
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

type fakeChallengeStore struct {
	hashes    map[string]string
	cooldowns map[string]bool
}

func newFakeChallengeStore() *fakeChallengeStore {
	return &fakeChallengeStore{hashes: map[string]string{}, cooldowns: map[string]bool{}}
}

func (s *fakeChallengeStore) Put(ctx context.Context, email, codeHash string, ttl time.Duration) error {
	s.hashes[email] = codeHash
	return nil
}

func (s *fakeChallengeStore) Get(ctx context.Context, email string) (string, bool, error) {
	hash, ok := s.hashes[email]
	return hash, ok, nil
}

func (s *fakeChallengeStore) Delete(ctx context.Context, email string) error {
	delete(s.hashes, email)
	return nil
}

func (s *fakeChallengeStore) SetCooldown(ctx context.Context, email string, d time.Duration) error {
	s.cooldowns[email] = true
	return nil
}

func (s *fakeChallengeStore) InCooldown(ctx context.Context, email string) (bool, error) {
	return s.cooldowns[email], nil
}

type fakeMailer struct {
	lastEmail string
	lastCode  string
	sent      int
}

func (m *fakeMailer) SendOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	m.lastEmail = email
	m.lastCode = code
	m.sent++
	return nil
}

// loadTestConfig 写入一份最小配置并加载为全局配置
func loadTestConfig(t *testing.T) {
	t.Helper()

	content := []byte(`
otp:
  length: 6
  ttl_minutes: 10
  resend_cooldown: 60
jwt:
  secret: "test-secret"
  expire_hours: 72
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	if _, err := config.Load(path); err != nil {
		t.Fatalf("load test config: %v", err)
	}
}

// -------------------------
// Tests
// -------------------------

func TestAuthService_OTPFlow_AutoRegistersAndIssuesToken(t *testing.T) {
	loadTestConfig(t)

	users := newFakeUserStore()
	challenges := newFakeChallengeStore()
	mailer := &fakeMailer{}
	svc := NewAuthService(users, challenges, mailer)
	ctx := context.Background()

	if err := svc.RequestOTP(ctx, "Milo@Example.com "); err != nil {
		t.Fatalf("RequestOTP returned error: %v", err)
	}
	if mailer.sent != 1 {
		t.Fatalf("expected 1 mail sent, got %d", mailer.sent)
	}
	// 邮箱统一小写处理
	if mailer.lastEmail != "milo@example.com" {
		t.Fatalf("expected normalized email, got %s", mailer.lastEmail)
	}
	if len(mailer.lastCode) != 6 {
		t.Fatalf("expected 6-digit code, got %q", mailer.lastCode)
	}
	// Redis 里只存哈希，不存明文
	if challenges.hashes["milo@example.com"] == mailer.lastCode {
		t.Fatalf("expected hashed code in store, found plaintext")
	}

	data, err := svc.VerifyOTP(ctx, "milo@example.com", mailer.lastCode)
	if err != nil {
		t.Fatalf("VerifyOTP returned error: %v", err)
	}
	if data.Token == "" || data.TokenType != "bearer" {
		t.Fatalf("expected bearer token, got %+v", data)
	}
	if data.User.Email != "milo@example.com" || data.User.Name != "milo" {
		t.Fatalf("expected auto-registered user, got %+v", data.User)
	}

	// 验证码单次有效
	if _, err := svc.VerifyOTP(ctx, "milo@example.com", mailer.lastCode); err != ErrOTPExpired {
		t.Fatalf("expected ErrOTPExpired on reuse, got %v", err)
	}
}

func TestAuthService_VerifyOTP_WrongCode(t *testing.T) {
	loadTestConfig(t)

	challenges := newFakeChallengeStore()
	mailer := &fakeMailer{}
	svc := NewAuthService(newFakeUserStore(), challenges, mailer)
	ctx := context.Background()

	if err := svc.RequestOTP(ctx, "milo@example.com"); err != nil {
		t.Fatalf("RequestOTP returned error: %v", err)
	}

	if _, err := svc.VerifyOTP(ctx, "milo@example.com", "000000"); err != ErrOTPInvalid {
		t.Fatalf("expected ErrOTPInvalid, got %v", err)
	}
	// 校验失败不消耗验证码
	if _, found, _ := challenges.Get(ctx, "milo@example.com"); !found {
		t.Fatalf("expected challenge to survive a failed attempt")
	}
}

func TestAuthService_RequestOTP_Cooldown(t *testing.T) {
	loadTestConfig(t)

	svc := NewAuthService(newFakeUserStore(), newFakeChallengeStore(), &fakeMailer{})
	ctx := context.Background()

	if err := svc.RequestOTP(ctx, "milo@example.com"); err != nil {
		t.Fatalf("RequestOTP returned error: %v", err)
	}
	if err := svc.RequestOTP(ctx, "milo@example.com"); err != ErrOTPCooldown {
		t.Fatalf("expected ErrOTPCooldown, got %v", err)
	}
}

func TestAuthService_GetCurrentUser_NotFound(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), newFakeChallengeStore(), &fakeMailer{})

	if _, err := svc.GetCurrentUser(42); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
