package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应体
// 成功：{status, message, total?, page?, limit?, data}
// 失败：{status, message, error: true}
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Error   bool        `json:"error,omitempty"`
	Total   *int64      `json:"total,omitempty"`
	Page    *int        `json:"page,omitempty"`
	Limit   *int        `json:"limit,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// OKPage 分页成功响应，附带 total/page/limit
func OKPage(c *gin.Context, message string, total int64, page, limit int, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  http.StatusOK,
		Message: message,
		Total:   &total,
		Page:    &page,
		Limit:   &limit,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status:  http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  statusCode,
		Message: message,
		Error:   true,
	})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
