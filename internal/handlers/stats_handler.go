package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirulhakim/themajlis/internal/helpers"
	"github.com/amirulhakim/themajlis/internal/listing"
	"github.com/amirulhakim/themajlis/internal/models"
)

// DashboardStats aggregates the numbers shown on the admin dashboard:
// total listings, upcoming vs completed, how many were created this month,
// and a per-category breakdown.
func DashboardStats(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var majlisList []models.Majlis
	if err := gormDB.Find(&majlisList).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving majlis.")
		return
	}

	now := time.Now()
	upcoming := 0
	thisMonth := 0
	categoryCounts := make(map[string]int)

	for _, m := range majlisList {
		if listing.UpcomingAt(m, now) {
			upcoming++
		}
		if m.CreatedAt.Month() == now.Month() && m.CreatedAt.Year() == now.Year() {
			thisMonth++
		}
		if m.Category == "" {
			categoryCounts["Uncategorized"]++
			continue
		}
		for _, category := range strings.Split(m.Category, models.CategoryDelimiter) {
			categoryCounts[category]++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      len(majlisList),
		"upcoming":   upcoming,
		"completed":  len(majlisList) - upcoming,
		"this_month": thisMonth,
		"categories": categoryCounts,
	})
}
