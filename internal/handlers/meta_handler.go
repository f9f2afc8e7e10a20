package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirulhakim/themajlis/internal/models"
)

// GetMeta serves the fixed enumerations the listing and form UIs need.
func GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": models.MajlisCategories,
		"audiences":  models.MajlisAudiences,
		"states":     models.MalaysianStates,
	})
}
