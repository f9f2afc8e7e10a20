package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/amirulhakim/themajlis/internal/helpers"
	"github.com/amirulhakim/themajlis/internal/listing"
	"github.com/amirulhakim/themajlis/internal/models"
)

// MajlisResponse is a majlis record decorated with the presentation fields
// the listing pages need: normalized poster URLs, the two-line location
// label, distance text and the upcoming flag.
type MajlisResponse struct {
	models.Majlis
	PosterURLs   []string      `json:"poster_urls"`
	Location     listing.Label `json:"location"`
	DistanceText string        `json:"distance_text,omitempty"`
	Upcoming     bool          `json:"upcoming"`
}

func buildMajlisResponse(m models.Majlis, now time.Time) MajlisResponse {
	return MajlisResponse{
		Majlis:       m,
		PosterURLs:   helpers.NormalizePosterURLs(m.PosterURL),
		Location:     listing.ResolveLabel(m),
		DistanceText: listing.DistanceText(m.Distance),
		Upcoming:     listing.UpcomingAt(m, now),
	}
}

func buildMajlisResponses(list []models.Majlis, now time.Time) []MajlisResponse {
	responses := make([]MajlisResponse, 0, len(list))
	for _, m := range list {
		responses = append(responses, buildMajlisResponse(m, now))
	}
	return responses
}

type majlisForm struct {
	title      string
	speaker    string
	categories []string
	venue      string
	address    string
	city       string
	state      string
	latitude   *float64
	longitude  *float64
	startDate  string
	endDate    string
	time       string
	audience   string
}

// parseMajlisForm reads and validates the multipart form shared by create and
// update. It responds with the appropriate error itself and returns false on
// failure.
func parseMajlisForm(c *gin.Context) (majlisForm, bool) {
	var f majlisForm

	f.title = strings.TrimSpace(c.PostForm("title"))
	f.speaker = strings.TrimSpace(c.PostForm("speaker"))
	f.venue = strings.TrimSpace(c.PostForm("venue"))
	f.address = strings.TrimSpace(c.PostForm("address"))
	f.city = strings.TrimSpace(c.PostForm("city"))
	f.state = strings.TrimSpace(c.PostForm("state"))
	f.time = strings.TrimSpace(c.PostForm("time"))
	f.audience = strings.TrimSpace(c.PostForm("audience"))

	for i := 0; ; i++ {
		category := c.PostForm(fmt.Sprintf("categories[%d]", i))
		if category == "" {
			break
		}
		f.categories = append(f.categories, category)
	}

	if f.title == "" || f.speaker == "" || len(f.categories) == 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return f, false
	}

	for _, category := range f.categories {
		if !models.IsValidCategory(category) {
			helpers.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf("Unknown category: %s.", category))
			return f, false
		}
	}

	if !models.IsValidAudience(f.audience) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid targeted audience.")
		return f, false
	}

	f.startDate = strings.TrimSpace(c.PostForm("start_date"))
	if _, err := time.Parse("2006-01-02", f.startDate); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start date format.")
		return f, false
	}

	f.endDate = strings.TrimSpace(c.PostForm("end_date"))
	if f.endDate == "" {
		f.endDate = f.startDate
	} else {
		if _, err := time.Parse("2006-01-02", f.endDate); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid end date format.")
			return f, false
		}
		if f.endDate < f.startDate {
			helpers.RespondWithError(c, http.StatusBadRequest, "End date must not be before start date.")
			return f, false
		}
	}

	var err error
	f.latitude, err = helpers.OptionalFloat(c.PostForm("latitude"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid latitude.")
		return f, false
	}
	f.longitude, err = helpers.OptionalFloat(c.PostForm("longitude"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid longitude.")
		return f, false
	}
	if (f.latitude == nil) != (f.longitude == nil) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Latitude and longitude must be provided together.")
		return f, false
	}

	return f, true
}

// uploadPosters stores every file sent as "posters" and returns their public
// URLs. A form without posters is fine.
func uploadPosters(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var urls []string
	for _, fileHeader := range form.File["posters"] {
		url, err := helpers.UploadPoster(c, fileHeader)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// resolvePosterUpdate decides the stored poster value after an update. New
// uploads replace the existing set wholesale; the clear flag drops it with no
// replacement. Returns the value to store and the locally served files that
// are now stale and should be removed from disk.
func resolvePosterUpdate(existing string, uploaded []string, clear bool) (string, []string) {
	if len(uploaded) == 0 && !clear {
		return existing, nil
	}

	var stale []string
	for _, old := range helpers.NormalizePosterURLs(existing) {
		if strings.HasPrefix(old, "/uploads/") {
			stale = append(stale, old)
		}
	}
	return helpers.EncodePosterURLs(uploaded), stale
}

func CreateMajlis(c *gin.Context) {
	form, ok := parseMajlisForm(c)
	if !ok {
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
		return
	}

	posterURLs, err := uploadPosters(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	majlis := models.Majlis{
		Title:     form.title,
		Speaker:   form.speaker,
		Category:  strings.Join(form.categories, models.CategoryDelimiter),
		Venue:     form.venue,
		Address:   form.address,
		City:      form.city,
		State:     form.state,
		Latitude:  form.latitude,
		Longitude: form.longitude,
		StartDate: form.startDate,
		EndDate:   form.endDate,
		Time:      form.time,
		Audience:  form.audience,
		PosterURL: helpers.EncodePosterURLs(posterURLs),
		LikedBy:   []string{},
		CreatedBy: user.ID,
	}

	if err := gormDB.Create(&majlis).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create majlis.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Majlis created successfully.",
		"majlis_id": majlis.ID,
	})
}

// ListMajlis is the public listing. The whole pipeline runs in memory:
// upcoming filter, optional proximity filter, search, category and state
// filters, then the selected sort.
func ListMajlis(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var majlisList []models.Majlis
	if err := gormDB.Order("created_at DESC").Find(&majlisList).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving majlis.")
		return
	}

	now := time.Now()
	filtered := majlisList

	if c.DefaultQuery("status", "upcoming") == "upcoming" {
		upcoming := make([]models.Majlis, 0, len(filtered))
		for _, m := range filtered {
			if listing.UpcomingAt(m, now) {
				upcoming = append(upcoming, m)
			}
		}
		filtered = upcoming
	}

	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, errLat := helpers.StringToFloat(latStr)
		lng, errLng := helpers.StringToFloat(lngStr)
		if errLat != nil || errLng != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid coordinates.")
			return
		}

		maxKm := 50.0
		if maxKmStr := c.Query("max_km"); maxKmStr != "" {
			parsed, err := helpers.StringToFloat(maxKmStr)
			if err != nil || parsed <= 0 {
				helpers.RespondWithError(c, http.StatusBadRequest, "Invalid max distance.")
				return
			}
			maxKm = parsed
		}

		filtered = listing.FilterByDistance(filtered, lat, lng, maxKm)
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		matched := make([]models.Majlis, 0, len(filtered))
		for _, m := range filtered {
			if strings.Contains(strings.ToLower(m.Title), q) ||
				strings.Contains(strings.ToLower(m.Speaker), q) ||
				strings.Contains(strings.ToLower(m.City), q) ||
				strings.Contains(strings.ToLower(m.State), q) {
				matched = append(matched, m)
			}
		}
		filtered = matched
	}

	if category := c.Query("category"); category != "" {
		matched := make([]models.Majlis, 0, len(filtered))
		for _, m := range filtered {
			if strings.Contains(m.Category, category) {
				matched = append(matched, m)
			}
		}
		filtered = matched
	}

	if state := strings.ToLower(c.Query("state")); state != "" {
		matched := make([]models.Majlis, 0, len(filtered))
		for _, m := range filtered {
			if strings.Contains(strings.ToLower(m.State), state) {
				matched = append(matched, m)
			}
		}
		filtered = matched
	}

	filtered = listing.Sort(filtered, c.DefaultQuery("sort", listing.SortDateAsc))

	c.JSON(http.StatusOK, gin.H{
		"majlis": buildMajlisResponses(filtered, now),
		"total":  len(filtered),
	})
}

func GetMajlis(c *gin.Context) {
	majlisID := c.Param("id")

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

	c.JSON(http.StatusOK, buildMajlisResponse(majlis, time.Now()))
}

// ListMyMajlis returns the caller's own listings for the dashboard, newest
// first.
func ListMyMajlis(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var majlisList []models.Majlis
	if err := gormDB.Where("created_by = ?", userID).Order("created_at DESC").Find(&majlisList).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving majlis.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"majlis": buildMajlisResponses(majlisList, time.Now()),
		"total":  len(majlisList),
	})
}

func UpdateMajlis(c *gin.Context) {
	majlisID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	form, ok := parseMajlisForm(c)
	if !ok {
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var majlis models.Majlis
	if err := gormDB.Where("id = ? AND created_by = ?", majlisID, userID).First(&majlis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusForbidden, "Majlis not found or you don't have permission to update.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding majlis.")
		return
	}

	majlis.Title = form.title
	majlis.Speaker = form.speaker
	majlis.Category = strings.Join(form.categories, models.CategoryDelimiter)
	majlis.Venue = form.venue
	majlis.Address = form.address
	majlis.City = form.city
	majlis.State = form.state
	majlis.Latitude = form.latitude
	majlis.Longitude = form.longitude
	majlis.StartDate = form.startDate
	majlis.EndDate = form.endDate
	majlis.Time = form.time
	majlis.Audience = form.audience

	newPosterURLs, err := uploadPosters(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	stored, stale := resolvePosterUpdate(majlis.PosterURL, newPosterURLs, c.PostForm("clear_posters") == "true")
	for _, old := range stale {
		if err := helpers.DeleteFile(old); err != nil {
			fmt.Printf("Error deleting old poster: %v\n", err)
		}
	}
	majlis.PosterURL = stored

	if err := gormDB.Save(&majlis).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update majlis.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Majlis updated successfully.",
		"majlis":  buildMajlisResponse(majlis, time.Now()),
	})
}

func DeleteMajlis(c *gin.Context) {
	majlisID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	result := gormDB.Where("id = ? AND created_by = ?", majlisID, userID).Delete(&models.Majlis{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete majlis.")
		return
	}

	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusForbidden, "Majlis not found or you don't have permission to delete.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Majlis deleted successfully.",
	})
}

func publicMajlisURL(id string) string {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return strings.TrimRight(baseURL, "/") + "/majlis/" + id
}

// ShareMajlis builds the WhatsApp-style share text for a listing.
func ShareMajlis(c *gin.Context) {
	majlisID := c.Param("id")

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

	label := listing.ResolveLabel(majlis)
	locationText := "TBA"
	if label.Primary != "" {
		locationText = label.Primary
		if label.Secondary != "" {
			locationText += "\nAddress: " + label.Secondary
		}
	}

	dateText := listing.FormatDateMS(majlis.StartDate)
	if dateText == "" {
		dateText = "TBA"
	}
	timeText := majlis.Time
	if timeText == "" {
		timeText = "TBA"
	}
	audienceText := majlis.Audience
	if audienceText == "" {
		audienceText = "All"
	}

	shareText := fmt.Sprintf(
		"%s\n\nSpeaker: %s\nDate: %s\nTime: %s\nLocation: %s\nAudience: %s\n\nJoin us for this Islamic learning session!\n\n#themajlis #majlisilmu #islamiclearning",
		majlis.Title, majlis.Speaker, dateText, timeText, locationText, audienceText,
	)

	c.JSON(http.StatusOK, gin.H{
		"text": shareText,
		"url":  publicMajlisURL(majlis.ID.String()),
	})
}

// MajlisQRCode returns a PNG QR code pointing at the public listing page.
func MajlisQRCode(c *gin.Context) {
	majlisID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var majlis models.Majlis
	if err := gormDB.Where("id = ?", majlisID).First(&majlis).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Majlis not found.")
		return
	}

	qrImage, err := qrcode.Encode(publicMajlisURL(majlis.ID.String()), qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}
