package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform API envelope. Business failures and successes both
// use this shape; clients switch on Success, not on the HTTP status alone.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// PagedResult wraps a page of a listing endpoint.
type PagedResult struct {
	Items      interface{} `json:"items"`
	PageNumber int         `json:"page_number"`
	PageSize   int         `json:"page_size"`
	TotalCount int64       `json:"total_count"`
	TotalPages int64       `json:"total_pages"`
}

// NewPagedResult computes TotalPages from the count and page size.
func NewPagedResult(items interface{}, pageNumber, pageSize int, totalCount int64) PagedResult {
	totalPages := int64(0)
	if pageSize > 0 {
		totalPages = (totalCount + int64(pageSize) - 1) / int64(pageSize)
	}
	return PagedResult{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// Fail sends a failure envelope with the given HTTP status.
func Fail(c *gin.Context, status int, message string, errs ...string) {
	c.JSON(status, Response{Success: false, Message: message, Errors: errs})
}

func BadRequest(c *gin.Context, message string, errs ...string) {
	Fail(c, http.StatusBadRequest, message, errs...)
}

func Unauthorized(c *gin.Context, message string, errs ...string) {
	Fail(c, http.StatusUnauthorized, message, errs...)
}

func NotFound(c *gin.Context, message string, errs ...string) {
	Fail(c, http.StatusNotFound, message, errs...)
}

// ServerError hides internal detail behind a generic message.
func ServerError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "An unexpected error occurred")
}
