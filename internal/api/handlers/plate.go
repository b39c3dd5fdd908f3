package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/validators"
)

// PlateHandler handles vehicle plate validation and generation
type PlateHandler struct {
	logger *logrus.Logger
}

// NewPlateHandler creates a new plate handler
func NewPlateHandler(logger *logrus.Logger) *PlateHandler {
	return &PlateHandler{logger: logger}
}

// Validate handles plate validation
// @Summary Validate a vehicle plate
// @Description Validates a plate in the legacy (AAA-1234) or Mercosul (AAA1B23) pattern
// @Tags Plate
// @Produce json
// @Param plate path string true "Vehicle plate" example(ABC1D23)
// @Success 200 {object} models.StandardResponse{data=models.PlateDetails}
// @Router /plate/{plate} [get]
func (h *PlateHandler) Validate(c *gin.Context) {
	input := c.Param("plate")

	data := models.PlateDetails{
		ValidationData: models.ValidationData{
			Input:  input,
			Scheme: "plate",
		},
	}

	if err := validators.Plate.Validate(input); err != nil {
		data.Reason = reasonOf(err)
		respondOK(c, "Placa inválida", data)
		return
	}

	data.Valid = true
	data.Cleaned = validators.Plate.Clean(input)
	data.Formatted, _ = validators.Plate.Format(input)
	kind, _ := validators.Plate.Kind(input)
	data.Kind = string(kind)

	respondOK(c, "Placa válida", data)
}

// Generate handles plate generation
// @Summary Generate a valid vehicle plate
// @Description Generates a random plate in the requested pattern
// @Tags Plate
// @Accept json
// @Produce json
// @Param request body models.GeneratePlateRequest false "Generation options"
// @Success 200 {object} models.StandardResponse{data=models.GeneratedData}
// @Failure 400 {object} models.StandardResponse
// @Router /plate/generate [post]
func (h *PlateHandler) Generate(c *gin.Context) {
	req := models.GeneratePlateRequest{Kind: string(validators.PlateMercosul)}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
			return
		}
		if req.Kind == "" {
			req.Kind = string(validators.PlateMercosul)
		}
	}

	value, err := validators.Plate.Generate(validators.PlateKind(req.Kind), req.Formatted)
	if err != nil {
		respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
		return
	}

	respondOK(c, "Placa gerada", models.GeneratedData{Scheme: "plate", Value: value})
}
