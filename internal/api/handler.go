package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/geo"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/recommend"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/repository"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

var validate = validator.New()

type Handler struct {
	locations repository.LocationRepository
	feedback  repository.FeedbackRepository
}

func NewHandler(locations repository.LocationRepository, feedback repository.FeedbackRepository) *Handler {
	return &Handler{
		locations: locations,
		feedback:  feedback,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/weather-locations", h.getWeatherLocations)
	r.GET("/api/recommendations", h.getRecommendations)
	r.POST("/api/feedback", h.postFeedback)
	r.GET("/health", h.health)
}

// locationResponse is the flat record shape the frontend consumes.
type locationResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Temperature   int      `json:"temperature"`
	Condition     string   `json:"condition"`
	Description   string   `json:"description"`
	Precipitation int      `json:"precipitation"`
	WindSpeed     float64  `json:"windSpeed"`
	DistanceMiles *float64 `json:"distanceMiles,omitempty"`
}

func toLocationResponse(loc models.WeatherLocation, user *models.Coordinates) locationResponse {
	out := locationResponse{
		ID:            loc.ID,
		Name:          loc.Name,
		Lat:           loc.Latitude,
		Lng:           loc.Longitude,
		Temperature:   loc.Temperature,
		Condition:     loc.Condition,
		Description:   loc.Description,
		Precipitation: loc.Precipitation,
		WindSpeed:     loc.WindSpeed,
	}
	if user != nil {
		d := geo.Distance(*user, loc.Coordinates())
		out.DistanceMiles = &d
	}
	return out
}

func (h *Handler) getWeatherLocations(c *gin.Context) {
	user := parseUserLocation(c)
	filter := repository.Filter{
		Near:  user,
		Limit: parseLimit(c),
	}

	locations, err := h.locations.ListLocations(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch weather locations",
		})
		return
	}

	if c.Query("format") == "geojson" {
		fc := toGeoJSON(locations)
		c.Header("Content-Type", "application/geo+json")
		c.JSON(http.StatusOK, fc)
		return
	}

	out := make([]locationResponse, 0, len(locations))
	for _, loc := range locations {
		out = append(out, toLocationResponse(loc, user))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getRecommendations(c *gin.Context) {
	user := parseUserLocation(c)

	locations, err := h.locations.ListLocations(c.Request.Context(), repository.Filter{
		Near:  user,
		Limit: parseLimit(c),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch weather locations",
		})
		return
	}

	filter := models.WeatherFilter{
		Temperature:   parseTemperaturePreference(c.Query("temp")),
		Precipitation: parsePrecipitationPreference(c.Query("precip")),
		Wind:          parseWindPreference(c.Query("wind")),
	}

	uctx := models.DefaultUserContext()
	if a := parseActivity(c.Query("activity")); a != "" {
		uctx.IntendedActivity = a
	}
	if d := c.Query("max_distance"); d != "" {
		if miles, err := strconv.ParseFloat(d, 64); err == nil && miles > 0 {
			uctx.TravelWillingness = miles
		}
	}

	results := recommend.FilterAndRank(locations, filter, uctx, user)
	view := recommend.ComputeMapView(results, user)

	out := make([]rankedResponse, 0, len(results))
	for _, r := range results {
		out = append(out, toRankedResponse(r, user))
	}

	c.JSON(http.StatusOK, gin.H{
		"results": out,
		"mapView": view,
	})
}

type rankedResponse struct {
	locationResponse
	OverallScore float64                   `json:"overallScore"`
	NearnessFit  float64                   `json:"nearnessFit"`
	NicenessFit  float64                   `json:"nicenessFit"`
	Reasoning    []string                  `json:"reasoning"`
	Comparison   scoringComparisonResponse `json:"comparisonContext"`
}

type scoringComparisonResponse struct {
	BetterThanPercent int      `json:"betterThanPercent"`
	UniqueAdvantages  []string `json:"uniqueAdvantages"`
}

func toRankedResponse(r recommend.RankedResult, user *models.Coordinates) rankedResponse {
	return rankedResponse{
		locationResponse: toLocationResponse(r.Location, user),
		OverallScore:     r.OverallScore,
		NearnessFit:      r.NearnessFit,
		NicenessFit:      r.NicenessFit,
		Reasoning:        r.Reasoning,
		Comparison: scoringComparisonResponse{
			BetterThanPercent: r.Comparison.BetterThanPercent,
			UniqueAdvantages:  r.Comparison.UniqueAdvantages,
		},
	}
}

// feedbackRequest is validated before anything touches the database.
type feedbackRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Comment  string `json:"comment" validate:"required,min=3,max=2000"`
	Rating   int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Category string `json:"category" validate:"omitempty,oneof=general bug feature data"`
}

func (h *Handler) postFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb := &models.Feedback{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Comment:   req.Comment,
		Rating:    req.Rating,
		Category:  req.Category,
		CreatedAt: time.Now(),
	}
	if err := h.feedback.AddFeedback(c.Request.Context(), fb); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": fb.ID})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseUserLocation returns nil unless both lat and lng parse cleanly.
func parseUserLocation(c *gin.Context) *models.Coordinates {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		return nil
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil
	}
	return &models.Coordinates{Lat: lat, Lng: lng}
}

func parseLimit(c *gin.Context) int {
	limit := defaultLimit
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= maxLimit {
			limit = n
		}
	}
	return limit
}

func parseActivity(s string) models.Activity {
	switch models.Activity(s) {
	case models.ActivityHiking, models.ActivityFishing, models.ActivityPhotography,
		models.ActivityCamping, models.ActivitySightseeing, models.ActivityGeneral:
		return models.Activity(s)
	default:
		return ""
	}
}

func parseTemperaturePreference(s string) models.TemperaturePreference {
	switch models.TemperaturePreference(s) {
	case models.TempCold, models.TempMild, models.TempHot:
		return models.TemperaturePreference(s)
	default:
		return ""
	}
}

func parsePrecipitationPreference(s string) models.PrecipitationPreference {
	switch models.PrecipitationPreference(s) {
	case models.PrecipNone, models.PrecipLight, models.PrecipHeavy:
		return models.PrecipitationPreference(s)
	default:
		return ""
	}
}

func parseWindPreference(s string) models.WindPreference {
	switch models.WindPreference(s) {
	case models.WindCalm, models.WindBreezy, models.WindWindy:
		return models.WindPreference(s)
	default:
		return ""
	}
}
