package handler

import (
	"net/http"
	"strconv"

	"internhub-go/internal/model"
	"internhub-go/internal/service"
	"internhub-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// InternshipHandler 负责处理所有与岗位目录相关的 API 请求。
type InternshipHandler struct {
	internshipService service.InternshipService
	searchService     service.SearchService
}

// NewInternshipHandler 创建一个新的 InternshipHandler 实例。
func NewInternshipHandler(internshipService service.InternshipService, searchService service.SearchService) *InternshipHandler {
	return &InternshipHandler{internshipService: internshipService, searchService: searchService}
}

// List 返回完整的岗位目录。
func (h *InternshipHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    h.internshipService.ListInternships(),
	})
}

// Get 根据 ID 返回单个岗位。
func (h *InternshipHandler) Get(c *gin.Context) {
	internship := h.internshipService.GetInternship(c.Param("id"))
	if internship == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    http.StatusNotFound,
			"message": "岗位不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    internship,
	})
}

// Filters 返回可用的筛选维度（类别与国家）。
func (h *InternshipHandler) Filters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"categories": h.internshipService.Categories(),
			"countries":  h.internshipService.Countries(),
		},
	})
}

// Search 对岗位索引执行关键词搜索。
func (h *InternshipHandler) Search(c *gin.Context) {
	query := c.Query("q")
	topK := 20
	if v := c.Query("topK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topK = n
		}
	}
	filters := service.SearchFilters{
		Category: c.Query("category"),
		Country:  c.Query("country"),
	}
	if v := c.Query("remote"); v != "" {
		remote := v == "true"
		filters.Remote = &remote
	}
	if v := c.Query("paid"); v != "" {
		paid := v == "true"
		filters.Paid = &paid
	}

	hits, err := h.searchService.Search(c.Request.Context(), query, topK, filters)
	if err != nil {
		log.Errorf("Search: internship search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "搜索失败",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    hits,
	})
}

// Apply 处理学生投递岗位的请求。
func (h *InternshipHandler) Apply(c *gin.Context) {
	var input service.ApplyInput
	// 求职信可选，请求体为空也允许
	_ = c.ShouldBindJSON(&input)

	studentID := c.GetString("userID")
	application, err := h.internshipService.Apply(c.Request.Context(), c.Param("id"), studentID, input)
	if err != nil {
		log.Errorf("Apply: failed for internship '%s': %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "投递失败",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "Application submitted",
		"data":    application,
	})
}

// Save 将岗位加入学生的收藏列表。
func (h *InternshipHandler) Save(c *gin.Context) {
	studentID := c.GetString("userID")
	if err := h.internshipService.SaveInternship(c.Request.Context(), studentID, c.Param("id")); err != nil {
		log.Errorf("Save: failed for internship '%s': %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "收藏失败",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success"})
}

// Unsave 将岗位移出学生的收藏列表。
func (h *InternshipHandler) Unsave(c *gin.Context) {
	studentID := c.GetString("userID")
	if err := h.internshipService.UnsaveInternship(c.Request.Context(), studentID, c.Param("id")); err != nil {
		log.Errorf("Unsave: failed for internship '%s': %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "取消收藏失败",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success"})
}

// Saved 返回学生收藏的岗位列表。
func (h *InternshipHandler) Saved(c *gin.Context) {
	studentID := c.GetString("userID")
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    h.internshipService.GetSavedInternships(studentID),
	})
}

// Applications 返回学生自己的申请列表。
func (h *InternshipHandler) Applications(c *gin.Context) {
	studentID := c.GetString("userID")
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    h.internshipService.GetStudentApplications(studentID),
	})
}

// EmployerInternships 返回当前雇主发布的岗位列表。
func (h *InternshipHandler) EmployerInternships(c *gin.Context) {
	employerID := c.GetString("userID")
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    h.internshipService.GetEmployerInternships(employerID),
	})
}

// InternshipApplications 返回某个岗位收到的申请列表。
func (h *InternshipHandler) InternshipApplications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    h.internshipService.GetApplicationsForInternship(c.Param("id")),
	})
}

// Create 处理雇主发布新岗位的请求。
func (h *InternshipHandler) Create(c *gin.Context) {
	var input service.CreateInternshipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warnf("Create: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：标题和公司不能为空",
		})
		return
	}
	input.EmployerID = c.GetString("userID")

	internship, err := h.internshipService.CreateInternship(c.Request.Context(), input)
	if err != nil {
		log.Errorf("Create: failed to create internship: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "发布岗位失败",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "Internship created",
		"data":    internship,
	})
}

// UpdateStatusRequest 定义了更新申请状态 API 的请求体结构。
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplicationStatus 处理雇主更新申请状态的请求。
func (h *InternshipHandler) UpdateApplicationStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的请求负载：status 不能为空",
		})
		return
	}
	status := model.ApplicationStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "无效的申请状态",
		})
		return
	}

	application, err := h.internshipService.UpdateApplicationStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		log.Errorf("UpdateApplicationStatus: failed for application '%s': %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "更新申请状态失败",
		})
		return
	}
	if application == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    http.StatusNotFound,
			"message": "申请不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    application,
	})
}
