package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/services"
	"github.com/nexconsult/brdocs-api/internal/validators"
)

// CEPHandler handles CEP validation and address lookup
type CEPHandler struct {
	lookupService services.LookupServiceInterface
	logger        *logrus.Logger
}

// NewCEPHandler creates a new CEP handler
func NewCEPHandler(lookupService services.LookupServiceInterface, logger *logrus.Logger) *CEPHandler {
	return &CEPHandler{
		lookupService: lookupService,
		logger:        logger,
	}
}

// Validate handles CEP validation
// @Summary Validate a CEP
// @Description Validates a postal code and returns its canonical forms
// @Tags CEP
// @Produce json
// @Param cep path string true "CEP" example(01310-100)
// @Success 200 {object} models.StandardResponse{data=models.ValidationData}
// @Router /cep/{cep} [get]
func (h *CEPHandler) Validate(c *gin.Context) {
	input := c.Param("cep")

	data := models.ValidationData{
		Input:  input,
		Scheme: "cep",
	}

	if err := validators.CEP.Validate(input); err != nil {
		data.Reason = reasonOf(err)
		respondOK(c, "CEP inválido", data)
		return
	}

	data.Valid = true
	data.Cleaned = validators.CEP.Clean(input)
	data.Formatted, _ = validators.CEP.Format(input)

	respondOK(c, "CEP válido", data)
}

// Address handles address lookup
// @Summary Look up the address of a CEP
// @Description Resolves a valid CEP into street, neighborhood, city and state
// @Tags CEP
// @Produce json
// @Param cep path string true "CEP" example(01310100)
// @Success 200 {object} models.StandardResponse{data=lookup.Address}
// @Failure 400 {object} models.StandardResponse
// @Failure 404 {object} models.StandardResponse
// @Failure 502 {object} models.StandardResponse
// @Router /cep/{cep}/address [get]
func (h *CEPHandler) Address(c *gin.Context) {
	input := c.Param("cep")

	address, err := h.lookupService.Address(c.Request.Context(), input)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	respondOK(c, "Consulta realizada com sucesso", address)
}
