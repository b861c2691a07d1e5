package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"internhub-go/internal/service"
	"internhub-go/pkg/log"
	"internhub-go/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源
	},
}

// AssistantHandler 负责处理助手对话的 REST 与 WebSocket 请求。
type AssistantHandler struct {
	assistantService service.AssistantService
	jwtManager       *token.JWTManager
}

// NewAssistantHandler 创建一个新的 AssistantHandler 实例。
func NewAssistantHandler(assistantService service.AssistantService, jwtManager *token.JWTManager) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService, jwtManager: jwtManager}
}

// Messages 返回当前的对话转录。
func (h *AssistantHandler) Messages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"messages": h.assistantService.Messages(),
			"state":    h.assistantService.State(),
		},
	})
}

// SendRequest 定义了发送消息 API 的请求体结构。
type SendRequest struct {
	Content string `json:"content" binding:"required"`
}

// Send 处理用户向助手发送一条消息。
func (h *AssistantHandler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：content 不能为空",
		})
		return
	}

	reply, err := h.assistantService.SendMessage(c.Request.Context(), req.Content)
	if err != nil {
		log.Errorf("Send: assistant message failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "发送消息失败",
		})
		return
	}
	if reply == nil {
		// 空白输入不产生任何消息
		c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success", "data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    reply,
	})
}

// Reset 将对话重置为只剩欢迎消息。
func (h *AssistantHandler) Reset(c *gin.Context) {
	h.assistantService.Reset()
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success"})
}

// Toggle 切换助手窗口的可见性。
func (h *AssistantHandler) Toggle(c *gin.Context) {
	visible := h.assistantService.ToggleVisible()
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    gin.H{"visible": visible},
	})
}

// Handle 处理一个传入的 WebSocket 连接，将助手回复以块的形式推送。
func (h *AssistantHandler) Handle(c *gin.Context) {
	tokenString := c.Param("token")
	if _, err := h.jwtManager.VerifyToken(tokenString); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "无效的 token", "data": nil})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket 升级失败", err)
		return
	}
	defer conn.Close()

	log.Infof("WebSocket 连接已建立")

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			log.Warnf("从 WebSocket 读取消息失败: %v", err)
			break
		}
		log.Infof("收到 WebSocket 消息: %s", string(message))

		reply, err := h.assistantService.SendMessage(c.Request.Context(), string(message))
		if err != nil {
			errMsg := map[string]interface{}{"type": "error", "message": "处理消息失败"}
			b, _ := json.Marshal(errMsg)
			_ = conn.WriteMessage(websocket.TextMessage, b)
			continue
		}
		if reply == nil {
			// 空白输入不回发任何内容
			continue
		}

		// 回复整体作为一个块发送，再跟一条完成通知
		chunk := map[string]interface{}{"chunk": reply.Content}
		b, _ := json.Marshal(chunk)
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Warnf("写入 WebSocket 消息失败: %v", err)
			break
		}

		done := map[string]interface{}{
			"type":      "completion",
			"status":    "finished",
			"messageId": reply.ID,
			"timestamp": time.Now().UnixMilli(),
		}
		b, _ = json.Marshal(done)
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Warnf("写入 WebSocket 完成通知失败: %v", err)
			break
		}
	}
}
