package handler

import (
	"net/http"

	"internhub-go/internal/service"
	"internhub-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// NotificationHandler 负责处理用户通知的 API 请求。
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler 创建一个新的 NotificationHandler 实例。
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List 返回当前用户的通知列表。
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetString("userID")
	list, err := h.notificationService.List(c.Request.Context(), userID)
	if err != nil {
		log.Errorf("List: failed to load notifications for '%s': %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "读取通知失败",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    list,
	})
}
