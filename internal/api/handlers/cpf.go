package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/validators"
)

// CPFHandler handles CPF validation and generation requests
type CPFHandler struct {
	logger *logrus.Logger
}

// NewCPFHandler creates a new CPF handler
func NewCPFHandler(logger *logrus.Logger) *CPFHandler {
	return &CPFHandler{logger: logger}
}

// Validate handles CPF validation
// @Summary Validate a CPF
// @Description Validates a CPF number, with or without formatting, and returns its canonical forms
// @Tags CPF
// @Produce json
// @Param cpf path string true "CPF number" example(123.456.789-09)
// @Success 200 {object} models.StandardResponse{data=models.ValidationData}
// @Router /cpf/{cpf} [get]
func (h *CPFHandler) Validate(c *gin.Context) {
	input := c.Param("cpf")

	data := models.ValidationData{
		Input:  input,
		Scheme: "cpf",
	}

	if err := validators.CPF.Validate(input); err != nil {
		data.Reason = reasonOf(err)
		respondOK(c, "CPF inválido", data)
		return
	}

	data.Valid = true
	data.Cleaned = validators.CPF.Clean(input)
	data.Formatted, _ = validators.CPF.Format(input)

	respondOK(c, "CPF válido", data)
}

// Generate handles CPF generation
// @Summary Generate a valid CPF
// @Description Generates a random CPF with valid check digits, for test data
// @Tags CPF
// @Accept json
// @Produce json
// @Param request body models.GenerateCPFRequest false "Generation options"
// @Success 200 {object} models.StandardResponse{data=models.GeneratedData}
// @Router /cpf/generate [post]
func (h *CPFHandler) Generate(c *gin.Context) {
	var req models.GenerateCPFRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
			return
		}
	}

	value := validators.CPF.Generate(req.Formatted)

	h.logger.WithField("request_id", c.GetString("request_id")).Debug("CPF generated")

	respondOK(c, "CPF gerado", models.GeneratedData{Scheme: "cpf", Value: value})
}
