package handler

import (
	"io"
	"net/http"

	"internhub-go/internal/service"
	"internhub-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// ResumeHandler 负责处理简历上传与查询的 API 请求。
type ResumeHandler struct {
	resumeService service.ResumeService
}

// NewResumeHandler 创建一个新的 ResumeHandler 实例。
func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Upload 通过 multipart 表单接收一个简历文件并持有它。
func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "未找到上传文件，请使用 file 字段",
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Errorf("Upload: failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "读取上传文件失败",
		})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		log.Errorf("Upload: failed to read uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "读取上传文件失败",
		})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resume, err := h.resumeService.Set(c.Request.Context(), fileHeader.Filename, contentType, content)
	if err != nil {
		log.Errorf("Upload: failed to hold resume '%s': %v", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "保存简历失败",
		})
		return
	}

	log.Infof("Resume '%s' uploaded successfully", fileHeader.Filename)
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "Resume uploaded",
		"data": gin.H{
			"fileName":   resume.FileName,
			"previewUrl": resume.PreviewURL,
		},
	})
}

// Get 返回当前持有的简历信息；没有时回退到持久化标记。
func (h *ResumeHandler) Get(c *gin.Context) {
	if resume := h.resumeService.Current(); resume != nil {
		c.JSON(http.StatusOK, gin.H{
			"code":    http.StatusOK,
			"message": "success",
			"data": gin.H{
				"fileName":   resume.FileName,
				"previewUrl": resume.PreviewURL,
				"restored":   false,
			},
		})
		return
	}

	marker, err := h.resumeService.Marker(c.Request.Context())
	if err != nil {
		log.Errorf("Get: failed to load resume marker: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "读取简历标记失败",
		})
		return
	}
	if marker == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    http.StatusNotFound,
			"message": "当前没有简历",
		})
		return
	}
	// 标记存在但文件句柄已不可恢复
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"fileName":   marker.FileName,
			"uploadedAt": marker.UploadedAt,
			"restored":   true,
		},
	})
}

// Delete 清除当前简历与持久化标记。
func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.resumeService.Clear(c.Request.Context()); err != nil {
		log.Errorf("Delete: failed to clear resume: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "清除简历失败",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success"})
}
