package handler

import (
	"net/http"

	"internhub-go/internal/service"
	"internhub-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// CourseHandler 负责处理所有与课程目录相关的 API 请求。
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler 创建一个新的 CourseHandler 实例。
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List 返回完整的课程目录。
func (h *CourseHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    h.courseService.ListCourses(),
	})
}

// Get 根据 ID 返回单个课程。
func (h *CourseHandler) Get(c *gin.Context) {
	course := h.courseService.GetCourse(c.Param("id"))
	if course == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    http.StatusNotFound,
			"message": "课程不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    course,
	})
}

// Enroll 处理学生报名课程的请求。
func (h *CourseHandler) Enroll(c *gin.Context) {
	studentID := c.GetString("userID")
	if err := h.courseService.Enroll(c.Request.Context(), studentID, c.Param("id")); err != nil {
		log.Errorf("Enroll: failed for course '%s': %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "报名失败",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success"})
}

// Complete 处理学生标记课程完成的请求。
func (h *CourseHandler) Complete(c *gin.Context) {
	studentID := c.GetString("userID")
	if err := h.courseService.MarkCompleted(c.Request.Context(), studentID, c.Param("id")); err != nil {
		log.Errorf("Complete: failed for course '%s': %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "标记完成失败",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success"})
}

// Enrolled 返回学生报名的课程列表。
func (h *CourseHandler) Enrolled(c *gin.Context) {
	studentID := c.GetString("userID")
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    h.courseService.GetEnrolledCourses(studentID),
	})
}

// Completed 返回学生已完成的课程列表。
func (h *CourseHandler) Completed(c *gin.Context) {
	studentID := c.GetString("userID")
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    h.courseService.GetCompletedCourses(studentID),
	})
}
