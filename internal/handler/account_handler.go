// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"internhub-go/internal/model"
	"internhub-go/internal/seed"
	"internhub-go/internal/service"
	"internhub-go/pkg/log"
	"internhub-go/pkg/token"

	"github.com/gin-gonic/gin"
)

// AccountHandler 负责处理所有与会话相关的 API 请求。
// 会话身份变化时同步通知助手重开会话。
type AccountHandler struct {
	accountService   service.AccountService
	assistantService service.AssistantService
	jwtManager       *token.JWTManager
}

// NewAccountHandler 创建一个新的 AccountHandler 实例。
func NewAccountHandler(accountService service.AccountService, assistantService service.AssistantService, jwtManager *token.JWTManager) *AccountHandler {
	return &AccountHandler{accountService: accountService, assistantService: assistantService, jwtManager: jwtManager}
}

// syncAssistant 根据当前会话把助手切换到对应的用户群体。
func (h *AccountHandler) syncAssistant() {
	if h.assistantService == nil {
		return
	}
	user := h.accountService.CurrentUser()
	switch {
	case user == nil:
		h.assistantService.EnsureAudience(seed.AudienceGuest, "")
	case user.Role == model.RoleEmployer:
		h.assistantService.EnsureAudience(seed.AudienceEmployer, user.Name)
	default:
		h.assistantService.EnsureAudience(seed.AudienceStudent, user.Name)
	}
}

// LoginRequest 定义了用户登录 API 的请求体结构。
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Login 处理用户登录请求。
func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	// 绑定并验证 JSON 请求体
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Login: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：邮箱、密码和角色不能为空",
		})
		return
	}

	user, accessToken, refreshToken, err := h.accountService.Login(c.Request.Context(), req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		log.Warnf("Login: authentication failed for '%s', error: %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    http.StatusUnauthorized,
			"message": "无效的凭证",
		})
		return
	}

	h.syncAssistant()
	log.Infof("User '%s' logged in successfully", req.Email)
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "Login successful",
		"data": gin.H{
			"user":         user,
			"token":        accessToken,
			"refreshToken": refreshToken,
		},
	})
}

// RegisterRequest 定义了用户注册 API 的请求体结构。
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"role" binding:"required"`
	Company      string `json:"company"`
	ProfileImage string `json:"profileImage"`
}

// Register 处理用户注册请求。
func (h *AccountHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Register: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：邮箱、密码和角色不能为空",
		})
		return
	}

	input := service.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Company:      req.Company,
		ProfileImage: req.ProfileImage,
	}
	user, accessToken, refreshToken, err := h.accountService.Register(c.Request.Context(), input, model.Role(req.Role))
	if err != nil {
		log.Warnf("Register: registration failed for '%s', error: %v", req.Email, err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": err.Error(),
		})
		return
	}

	h.syncAssistant()
	log.Infof("User '%s' registered successfully", req.Email)
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "User registered successfully",
		"data": gin.H{
			"user":         user,
			"token":        accessToken,
			"refreshToken": refreshToken,
		},
	})
}

// Logout 处理用户登出请求，清除会话状态与持久化记录。
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.accountService.Logout(c.Request.Context()); err != nil {
		log.Errorf("Logout failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "登出失败",
		})
		return
	}
	h.syncAssistant()
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "Logout successful",
	})
}

// Me 返回当前会话中的用户信息。
func (h *AccountHandler) Me(c *gin.Context) {
	user := h.accountService.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    http.StatusUnauthorized,
			"message": "当前未登录",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    user,
	})
}

// RefreshRequest 定义了刷新 token API 的请求体结构。
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshToken 用有效的 refresh token 换取新的 access token。
func (h *AccountHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：refreshToken 不能为空",
		})
		return
	}

	claims, err := h.jwtManager.VerifyToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    http.StatusUnauthorized,
			"message": "无效或已过期的 refresh token",
		})
		return
	}

	accessToken, err := h.jwtManager.GenerateToken(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		log.Errorf("RefreshToken: failed to generate access token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "生成 token 失败",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    gin.H{"token": accessToken},
	})
}
