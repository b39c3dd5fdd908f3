package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/services"
	"github.com/nexconsult/brdocs-api/internal/validators"
)

// CNPJHandler handles CNPJ validation, generation and company lookup
type CNPJHandler struct {
	lookupService services.LookupServiceInterface
	logger        *logrus.Logger
}

// NewCNPJHandler creates a new CNPJ handler
func NewCNPJHandler(lookupService services.LookupServiceInterface, logger *logrus.Logger) *CNPJHandler {
	return &CNPJHandler{
		lookupService: lookupService,
		logger:        logger,
	}
}

// Validate handles CNPJ validation
// @Summary Validate a CNPJ
// @Description Validates a CNPJ number and returns its canonical forms plus headquarters/branch information
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ number" example(11.222.333/0001-81)
// @Success 200 {object} models.StandardResponse{data=models.CNPJDetails}
// @Router /cnpj/{cnpj} [get]
func (h *CNPJHandler) Validate(c *gin.Context) {
	input := c.Param("cnpj")

	data := models.CNPJDetails{
		ValidationData: models.ValidationData{
			Input:  input,
			Scheme: "cnpj",
		},
	}

	if err := validators.CNPJ.Validate(input); err != nil {
		data.Reason = reasonOf(err)
		respondOK(c, "CNPJ inválido", data)
		return
	}

	data.Valid = true
	data.Cleaned = validators.CNPJ.Clean(input)
	data.Formatted, _ = validators.CNPJ.Format(input)
	data.Headquarters, _ = validators.CNPJ.IsHeadquarters(input)
	data.BranchNumber, _ = validators.CNPJ.BranchNumber(input)
	data.BaseNumber, _ = validators.CNPJ.BaseNumber(input)

	respondOK(c, "CNPJ válido", data)
}

// Generate handles CNPJ generation
// @Summary Generate a valid CNPJ
// @Description Generates a random CNPJ with valid check digits, optionally for a specific branch
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.GenerateCNPJRequest false "Generation options"
// @Success 200 {object} models.StandardResponse{data=models.GeneratedData}
// @Failure 400 {object} models.StandardResponse
// @Router /cnpj/generate [post]
func (h *CNPJHandler) Generate(c *gin.Context) {
	var req models.GenerateCNPJRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
			return
		}
	}

	// Absent means headquarters; an explicit 0 is rejected by the validator.
	branch := 1
	if req.Branch != nil {
		branch = *req.Branch
	}

	value, err := validators.CNPJ.Generate(req.Formatted, branch)
	if err != nil {
		respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
		return
	}

	respondOK(c, "CNPJ gerado", models.GeneratedData{Scheme: "cnpj", Value: value})
}

// Company handles company registration lookup
// @Summary Look up company registration data
// @Description Resolves a valid CNPJ into its public registration data
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ number" example(11222333000181)
// @Success 200 {object} models.StandardResponse{data=lookup.Company}
// @Failure 400 {object} models.StandardResponse
// @Failure 404 {object} models.StandardResponse
// @Failure 502 {object} models.StandardResponse
// @Router /cnpj/{cnpj}/company [get]
func (h *CNPJHandler) Company(c *gin.Context) {
	start := time.Now()
	input := c.Param("cnpj")

	company, err := h.lookupService.Company(c.Request.Context(), input)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"cnpj":       validators.CNPJ.Clean(input),
		"duration":   time.Since(start).String(),
	}).Info("Company lookup completed")

	respondOK(c, "Consulta realizada com sucesso", company)
}
