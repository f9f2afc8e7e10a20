package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirulhakim/themajlis/internal/helpers"
	"github.com/amirulhakim/themajlis/internal/models"
)

// ToggleLike likes a majlis on behalf of the caller, or removes the like if
// it is already there.
func ToggleLike(c *gin.Context) {
	majlisID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	callerID := userID.(string)

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var majlis models.Majlis
	if err := gormDB.Where("id = ?", majlisID).First(&majlis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Majlis not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving majlis.")
		return
	}

	hasLiked := false
	for _, id := range majlis.LikedBy {
		if id == callerID {
			hasLiked = true
			break
		}
	}

	if hasLiked {
		likedBy := make([]string, 0, len(majlis.LikedBy))
		for _, id := range majlis.LikedBy {
			if id != callerID {
				likedBy = append(likedBy, id)
			}
		}
		majlis.LikedBy = likedBy
		if majlis.LikeCount > 0 {
			majlis.LikeCount--
		}
	} else {
		majlis.LikedBy = append(majlis.LikedBy, callerID)
		majlis.LikeCount++
	}

	if err := gormDB.Save(&majlis).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update like.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"like_count":     majlis.LikeCount,
		"user_has_liked": !hasLiked,
	})
}

// CheckLiked reports whether the caller has liked the majlis.
func CheckLiked(c *gin.Context) {
	majlisID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	callerID := userID.(string)

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var majlis models.Majlis
	if err := gormDB.Where("id = ?", majlisID).First(&majlis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Majlis not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving majlis.")
		return
	}

	liked := false
	for _, id := range majlis.LikedBy {
		if id == callerID {
			liked = true
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
