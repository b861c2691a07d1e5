// Package service 包含了应用的业务逻辑层。
package service

import (
	"context"
	"internhub-go/internal/model"
	"internhub-go/internal/repository"
	"internhub-go/pkg/log"
	"internhub-go/pkg/token"
	"strings"
	"sync"
	"time"
)

// RegisterInput 是注册时可提供的字段，缺省字段由服务补默认值。
type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Company      string `json:"company"`
	ProfileImage string `json:"profileImage"`
}

// AccountService 接口定义了会话状态持有者的所有操作。
//
// 登录/注册是模拟的：任何输入在经过模拟延迟后都会成功，
// 用户由 email 的本地部分合成。唯一的失败路径是会话记录持久化失败。
type AccountService interface {
	Login(ctx context.Context, email, password string, role model.Role) (*model.User, string, string, error)
	Register(ctx context.Context, input RegisterInput, role model.Role) (*model.User, string, string, error)
	Logout(ctx context.Context) error
	CurrentUser() *model.User
	IsAuthenticated() bool
}

type accountService struct {
	mu            sync.Mutex
	user          *model.User
	authenticated bool

	sessionRepo repository.SessionRepository
	jwtManager  *token.JWTManager
	delay       time.Duration
}

// NewAccountService 创建会话状态持有者，并同步尝试恢复持久化的会话：
// 记录存在且可解析则恢复为已登录状态，否则以未登录状态启动。
func NewAccountService(sessionRepo repository.SessionRepository, jwtManager *token.JWTManager, delay time.Duration) AccountService {
	s := &accountService{
		sessionRepo: sessionRepo,
		jwtManager:  jwtManager,
		delay:       delay,
	}

	user, err := sessionRepo.Load(context.Background())
	if err != nil {
		// 记录损坏或读取失败：丢弃并以未登录状态启动
		log.Warnf("恢复会话失败，以未登录状态启动: %v", err)
		return s
	}
	if user != nil {
		s.user = user
		s.authenticated = true
		log.Infof("已恢复持久化会话: %s (%s)", user.Email, user.Role)
	}
	return s
}

// Login 模拟登录：不校验凭证，延迟后必定成功。
// 返回合成的用户以及 access/refresh token。
func (s *accountService) Login(ctx context.Context, email, password string, role model.Role) (*model.User, string, string, error) {
	// 模拟网络延迟；延迟一旦开始总会完成，不随 ctx 取消
	time.Sleep(s.delay)

	user := synthesizeUser(email, "", "", "", role)
	return s.establish(ctx, user)
}

// Register 模拟注册：用提供的字段合成用户，缺省字段补默认值。
func (s *accountService) Register(ctx context.Context, input RegisterInput, role model.Role) (*model.User, string, string, error) {
	time.Sleep(s.delay)

	user := synthesizeUser(input.Email, input.Name, input.Company, input.ProfileImage, role)
	return s.establish(ctx, user)
}

// establish 持久化会话记录并标记为已登录。持久化失败时会话状态不变。
func (s *accountService) establish(ctx context.Context, user *model.User) (*model.User, string, string, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", "", err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sessionRepo.Save(ctx, user); err != nil {
		return nil, "", "", err
	}
	s.user = user
	s.authenticated = true
	return user, accessToken, refreshToken, nil
}

// Logout 清除内存中的用户与登录标记，并删除持久化的会话记录。
func (s *accountService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	return s.sessionRepo.Delete(ctx)
}

// CurrentUser 返回当前会话用户；未登录时为 nil。
func (s *accountService) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated 返回会话是否处于已登录状态。
func (s *accountService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// synthesizeUser 从 email 与角色合成一个用户记录。
// 名字缺省取 email 的本地部分；公司字段只出现在雇主记录上。
func synthesizeUser(email, name, company, profileImage string, role model.Role) *model.User {
	localPart := email
	if idx := strings.Index(email, "@"); idx >= 0 {
		localPart = email[:idx]
	}
	if name == "" {
		name = localPart
	}
	if profileImage == "" {
		profileImage = "/images/avatars/default.png"
	}

	user := &model.User{
		ID:           token.NewID("user"),
		Name:         name,
		Email:        email,
		Role:         role,
		ProfileImage: profileImage,
	}
	if role == model.RoleEmployer {
		if company == "" {
			company = name + " & Co."
		}
		user.Employer = &model.EmployerProfile{Company: company}
	}
	return user
}
