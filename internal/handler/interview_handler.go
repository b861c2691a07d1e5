package handler

import (
	"errors"
	"net/http"

	"internhub-go/internal/service"

	"github.com/gin-gonic/gin"
)

// InterviewHandler 负责处理模拟面试的 API 请求。
type InterviewHandler struct {
	interviewService service.InterviewService
}

// NewInterviewHandler 创建一个新的 InterviewHandler 实例。
func NewInterviewHandler(interviewService service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

// GenerateRequest 定义了创建模拟面试 API 的请求体结构。
type GenerateRequest struct {
	Role string `json:"role" binding:"required"`
}

// Generate 为指定岗位方向创建一场新的模拟面试。
func (h *InterviewHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：role 不能为空",
		})
		return
	}
	interview := h.interviewService.Generate(req.Role)
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    interview,
	})
}

// Get 根据 ID 返回一场模拟面试。
func (h *InterviewHandler) Get(c *gin.Context) {
	interview := h.interviewService.Get(c.Param("id"))
	if interview == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    http.StatusNotFound,
			"message": "面试不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    interview,
	})
}

// AnswerRequest 定义了提交答案 API 的请求体结构。
type AnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// SubmitAnswer 记录一道题的答案并返回即时反馈。
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：questionId 和 answer 不能为空",
		})
		return
	}

	interview, err := h.interviewService.SubmitAnswer(c.Param("id"), req.QuestionID, req.Answer)
	if err != nil {
		if errors.Is(err, service.ErrInterviewCompleted) {
			c.JSON(http.StatusConflict, gin.H{
				"code":    http.StatusConflict,
				"message": "面试已结束，无法提交答案",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "提交答案失败",
		})
		return
	}
	if interview == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    http.StatusNotFound,
			"message": "面试或题目不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    interview,
	})
}

// Complete 结束一场模拟面试并生成整体反馈。
func (h *InterviewHandler) Complete(c *gin.Context) {
	interview, err := h.interviewService.Complete(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrInterviewCompleted) {
			c.JSON(http.StatusConflict, gin.H{
				"code":    http.StatusConflict,
				"message": "面试已结束",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "结束面试失败",
		})
		return
	}
	if interview == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    http.StatusNotFound,
			"message": "面试不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    interview,
	})
}
