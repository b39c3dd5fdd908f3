package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/validators"
)

// PhoneHandler handles phone validation and generation
type PhoneHandler struct {
	logger *logrus.Logger
}

// NewPhoneHandler creates a new phone handler
func NewPhoneHandler(logger *logrus.Logger) *PhoneHandler {
	return &PhoneHandler{logger: logger}
}

// Validate handles phone validation
// @Summary Validate a phone number
// @Description Validates a national phone number and returns its area code, state and line kind
// @Tags Phone
// @Produce json
// @Param phone path string true "Phone number" example((11) 98765-4321)
// @Success 200 {object} models.StandardResponse{data=models.PhoneDetails}
// @Router /phone/{phone} [get]
func (h *PhoneHandler) Validate(c *gin.Context) {
	input := c.Param("phone")

	data := models.PhoneDetails{
		ValidationData: models.ValidationData{
			Input:  input,
			Scheme: "phone",
		},
	}

	if err := validators.Phone.Validate(input); err != nil {
		data.Reason = reasonOf(err)
		respondOK(c, "Telefone inválido", data)
		return
	}

	data.Valid = true
	data.Cleaned = validators.Phone.Clean(input)
	data.Formatted, _ = validators.Phone.Format(input)
	data.AreaCode, _ = validators.Phone.AreaCode(input)
	data.State, _ = validators.Phone.StateForAreaCode(data.AreaCode)
	kind, _ := validators.Phone.Kind(input)
	data.Kind = string(kind)

	respondOK(c, "Telefone válido", data)
}

// Generate handles phone generation
// @Summary Generate a valid phone number
// @Description Generates a random phone number for a line kind and optional area code
// @Tags Phone
// @Accept json
// @Produce json
// @Param request body models.GeneratePhoneRequest false "Generation options"
// @Success 200 {object} models.StandardResponse{data=models.GeneratedData}
// @Failure 400 {object} models.StandardResponse
// @Router /phone/generate [post]
func (h *PhoneHandler) Generate(c *gin.Context) {
	req := models.GeneratePhoneRequest{Kind: string(validators.PhoneMobile)}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
			return
		}
		if req.Kind == "" {
			req.Kind = string(validators.PhoneMobile)
		}
	}

	value, err := validators.Phone.Generate(validators.PhoneKind(req.Kind), req.AreaCode, req.Formatted)
	if err != nil {
		respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
		return
	}

	respondOK(c, "Telefone gerado", models.GeneratedData{Scheme: "phone", Value: value})
}
