package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/lookup"
	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/services"
)

// ReferenceHandler serves national reference data: banks, area codes,
// holidays, states, municipalities and FIPE tables.
type ReferenceHandler struct {
	lookupService services.LookupServiceInterface
	logger        *logrus.Logger
}

// NewReferenceHandler creates a new reference data handler
func NewReferenceHandler(lookupService services.LookupServiceInterface, logger *logrus.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		lookupService: lookupService,
		logger:        logger,
	}
}

// Banks lists all banks
// @Summary List banks
// @Description Lists every bank registered in the national payment system, with optional name search
// @Tags Reference
// @Produce json
// @Param q query string false "Name filter"
// @Success 200 {object} models.StandardResponse{data=[]lookup.Bank}
// @Failure 502 {object} models.StandardResponse
// @Router /banks [get]
func (h *ReferenceHandler) Banks(c *gin.Context) {
	var (
		banks []lookup.Bank
		err   error
	)

	if query := c.Query("q"); query != "" {
		banks, err = h.lookupService.SearchBanks(c.Request.Context(), query)
	} else {
		banks, err = h.lookupService.Banks(c.Request.Context())
	}
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", banks)
}

// Bank resolves a bank code
// @Summary Look up a bank by code
// @Description Resolves a COMPE bank code into the bank's registration data
// @Tags Reference
// @Produce json
// @Param code path string true "Bank code" example(260)
// @Success 200 {object} models.StandardResponse{data=lookup.Bank}
// @Failure 400 {object} models.StandardResponse
// @Failure 404 {object} models.StandardResponse
// @Router /banks/{code} [get]
func (h *ReferenceHandler) Bank(c *gin.Context) {
	bank, err := h.lookupService.Bank(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", bank)
}

// AreaCode resolves a DDD
// @Summary Look up a DDD
// @Description Resolves an area code into its state and served cities
// @Tags Reference
// @Produce json
// @Param ddd path string true "Area code" example(11)
// @Success 200 {object} models.StandardResponse{data=lookup.AreaCodeInfo}
// @Failure 400 {object} models.StandardResponse
// @Failure 404 {object} models.StandardResponse
// @Router /ddd/{ddd} [get]
func (h *ReferenceHandler) AreaCode(c *gin.Context) {
	info, err := h.lookupService.AreaCode(c.Request.Context(), c.Param("ddd"))
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", info)
}

// Holidays lists national holidays
// @Summary List national holidays of a year
// @Tags Reference
// @Produce json
// @Param year path int true "Year" example(2026)
// @Success 200 {object} models.StandardResponse{data=[]lookup.Holiday}
// @Failure 400 {object} models.StandardResponse
// @Router /holidays/{year} [get]
func (h *ReferenceHandler) Holidays(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		respondBadRequest(c, models.ErrorCodeInvalidRequest, "year must be numeric")
		return
	}

	holidays, err := h.lookupService.Holidays(c.Request.Context(), year)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", holidays)
}

// CheckHoliday reports whether a date is a national holiday
// @Summary Check whether a date is a national holiday
// @Tags Reference
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)" example(2026-04-21)
// @Success 200 {object} models.StandardResponse
// @Failure 400 {object} models.StandardResponse
// @Router /holidays/check [get]
func (h *ReferenceHandler) CheckHoliday(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		respondBadRequest(c, models.ErrorCodeInvalidRequest, "date query parameter is required")
		return
	}

	isHoliday, holiday, err := h.lookupService.IsHoliday(c.Request.Context(), date)
	if err != nil {
		if _, parseErr := time.Parse("2006-01-02", date); parseErr != nil {
			respondBadRequest(c, models.ErrorCodeInvalidRequest, "date must be YYYY-MM-DD")
			return
		}
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", gin.H{
		"date":    date,
		"holiday": isHoliday,
		"details": holiday,
	})
}

// NextHoliday returns the next national holiday
// @Summary Next national holiday
// @Tags Reference
// @Produce json
// @Success 200 {object} models.StandardResponse{data=lookup.Holiday}
// @Router /holidays/next [get]
func (h *ReferenceHandler) NextHoliday(c *gin.Context) {
	holiday, err := h.lookupService.NextHoliday(c.Request.Context())
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", holiday)
}

// States lists the federative units
// @Summary List states
// @Tags Reference
// @Produce json
// @Success 200 {object} models.StandardResponse{data=[]lookup.State}
// @Router /states [get]
func (h *ReferenceHandler) States(c *gin.Context) {
	states, err := h.lookupService.States(c.Request.Context())
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", states)
}

// Cities lists the municipalities of a state
// @Summary List municipalities of a state
// @Tags Reference
// @Produce json
// @Param uf path string true "State abbreviation" example(SP)
// @Success 200 {object} models.StandardResponse{data=[]lookup.City}
// @Failure 400 {object} models.StandardResponse
// @Router /states/{uf}/cities [get]
func (h *ReferenceHandler) Cities(c *gin.Context) {
	cities, err := h.lookupService.Cities(c.Request.Context(), c.Param("uf"))
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", cities)
}

// FIPEBrands lists FIPE brands of a vehicle type
// @Summary List FIPE brands
// @Tags Reference
// @Produce json
// @Param vehicle path string true "Vehicle type (carros, motos, caminhoes)" example(carros)
// @Success 200 {object} models.StandardResponse{data=[]lookup.FIPEBrand}
// @Router /fipe/{vehicle}/brands [get]
func (h *ReferenceHandler) FIPEBrands(c *gin.Context) {
	vehicle := lookup.VehicleType(c.Param("vehicle"))
	switch vehicle {
	case lookup.VehicleCars, lookup.VehicleMotorcycles, lookup.VehicleTrucks:
	default:
		respondBadRequest(c, models.ErrorCodeInvalidRequest, "vehicle must be carros, motos or caminhoes")
		return
	}

	brands, err := h.lookupService.FIPEBrands(c.Request.Context(), vehicle)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", brands)
}

// FIPEPrice returns the FIPE price of a vehicle
// @Summary FIPE price of one vehicle
// @Tags Reference
// @Produce json
// @Param vehicle path string true "Vehicle type" example(carros)
// @Param brand path string true "Brand code" example(59)
// @Param model path string true "Model code" example(5940)
// @Param year path string true "Year code" example(2014-3)
// @Success 200 {object} models.StandardResponse{data=lookup.FIPEPrice}
// @Router /fipe/{vehicle}/price/{brand}/{model}/{year} [get]
func (h *ReferenceHandler) FIPEPrice(c *gin.Context) {
	vehicle := lookup.VehicleType(c.Param("vehicle"))
	switch vehicle {
	case lookup.VehicleCars, lookup.VehicleMotorcycles, lookup.VehicleTrucks:
	default:
		respondBadRequest(c, models.ErrorCodeInvalidRequest, "vehicle must be carros, motos or caminhoes")
		return
	}

	price, err := h.lookupService.FIPEPrice(c.Request.Context(), vehicle,
		c.Param("brand"), c.Param("model"), c.Param("year"))
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", price)
}
