package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slides/internal/db"
)

const (
	msgNotFound          = "Not found"
	msgSlideshowNotFound = "Slideshow not found"
	msgSlideshowCorrupt  = "Slideshow is unreadable"
	msgInvalidData       = "Invalid data"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// NotFound answers any request no route claims.
func NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, msgNotFound)
}

// SlugParam rejects a :slug segment outside [a-zA-Z0-9_-]+ the same way an
// unroutable path is rejected.
func SlugParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !db.ValidSlug(c.Param("slug")) {
			NotFound(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Health 健康检查
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
