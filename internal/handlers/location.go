package handlers

import (
	"strconv"

	"github.com/devyhq/devy-backend/internal/services"
	"github.com/devyhq/devy-backend/pkg/logger"
	"github.com/devyhq/devy-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locations *services.LocationService
}

func NewLocationHandler(locations *services.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// GetLocationData returns countries and work preferences in one call
// GET /api/locations
func (h *LocationHandler) GetLocationData(c *gin.Context) {
	data, err := h.locations.GetLocationData()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load location data")
		response.ServerError(c)
		return
	}
	response.OK(c, "", data)
}

// GetCountries returns all active countries
// GET /api/locations/countries
func (h *LocationHandler) GetCountries(c *gin.Context) {
	countries, err := h.locations.GetCountries()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load countries")
		response.ServerError(c)
		return
	}
	response.OK(c, "", countries)
}

// GetCitiesByCountry returns the active cities of a country
// GET /api/locations/countries/:countryId/cities
func (h *LocationHandler) GetCitiesByCountry(c *gin.Context) {
	countryID, err := strconv.ParseUint(c.Param("countryId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid country id")
		return
	}

	cities, err := h.locations.GetCitiesByCountry(uint(countryID))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load cities")
		response.ServerError(c)
		return
	}
	response.OK(c, "", cities)
}

// GetWorkPreferences returns the active work preferences
// GET /api/locations/work-preferences
func (h *LocationHandler) GetWorkPreferences(c *gin.Context) {
	prefs, err := h.locations.GetWorkPreferences()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load work preferences")
		response.ServerError(c)
		return
	}
	response.OK(c, "", prefs)
}
