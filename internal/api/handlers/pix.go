package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/validators"
)

// maxPixBatchSize bounds batch requests so one call cannot hog the worker.
const maxPixBatchSize = 500

// PixHandler handles Pix key analysis requests
type PixHandler struct {
	logger *logrus.Logger
}

// NewPixHandler creates a new Pix handler
func NewPixHandler(logger *logrus.Logger) *PixHandler {
	return &PixHandler{logger: logger}
}

// keyData maps a key analysis onto the response shape.
func keyData(input string, info validators.KeyInfo, reason string) models.PixKeyData {
	return models.PixKeyData{
		Input:     input,
		Valid:     info.Valid,
		Type:      string(info.Type),
		Cleaned:   info.Cleaned,
		Formatted: info.Formatted,
		Masked:    info.Masked,
		Extras:    info.Extras,
		Reason:    reason,
	}
}

// Validate handles Pix key validation
// @Summary Validate a Pix key
// @Description Detects the key type (CPF, CNPJ, email, phone or random) and validates it
// @Tags Pix
// @Accept json
// @Produce json
// @Param request body models.ValidateRequest true "Pix key"
// @Success 200 {object} models.StandardResponse{data=models.PixKeyData}
// @Failure 400 {object} models.StandardResponse
// @Router /pix/validate [post]
func (h *PixHandler) Validate(c *gin.Context) {
	var req models.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
		return
	}

	input := validators.Pix.Sanitize(req.Value)
	info := validators.Pix.Describe(req.Value)

	reason := ""
	if !info.Valid {
		reason = reasonOf(validators.Pix.Validate(req.Value))
	}

	message := "Chave Pix válida"
	if !info.Valid {
		message = "Chave Pix inválida"
	}
	respondOK(c, message, keyData(input, info, reason))
}

// Batch handles batch Pix key validation
// @Summary Validate Pix keys in batch
// @Description Validates up to 500 Pix keys in one call, preserving input order
// @Tags Pix
// @Accept json
// @Produce json
// @Param request body models.PixBatchRequest true "Pix keys"
// @Success 200 {object} models.StandardResponse{data=models.PixBatchData}
// @Failure 400 {object} models.StandardResponse
// @Router /pix/batch [post]
func (h *PixHandler) Batch(c *gin.Context) {
	var req models.PixBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
		return
	}
	if len(req.Keys) == 0 {
		respondBadRequest(c, models.ErrorCodeInvalidRequest, "keys must not be empty")
		return
	}
	if len(req.Keys) > maxPixBatchSize {
		respondBadRequest(c, models.ErrorCodeInvalidRequest,
			fmt.Sprintf("at most %d keys per batch", maxPixBatchSize))
		return
	}

	data := models.PixBatchData{
		Total:   len(req.Keys),
		Results: make([]models.PixKeyData, 0, len(req.Keys)),
	}

	for _, key := range req.Keys {
		info := validators.Pix.Describe(key)
		reason := ""
		if info.Valid {
			data.ValidCount++
		} else {
			reason = reasonOf(validators.Pix.Validate(key))
		}
		data.Results = append(data.Results, keyData(validators.Pix.Sanitize(key), info, reason))
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"total":      data.Total,
		"valid":      data.ValidCount,
	}).Info("Pix batch validation completed")

	respondOK(c, "Validação em lote concluída", data)
}

// Mask handles Pix key masking
// @Summary Mask a Pix key
// @Description Returns the key masked for display in logs and receipts
// @Tags Pix
// @Accept json
// @Produce json
// @Param request body models.PixMaskRequest true "Pix key"
// @Success 200 {object} models.StandardResponse{data=models.PixKeyData}
// @Failure 400 {object} models.StandardResponse
// @Router /pix/mask [post]
func (h *PixHandler) Mask(c *gin.Context) {
	var req models.PixMaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
		return
	}

	masked, err := validators.Pix.Mask(req.Key, 2)
	if err != nil {
		respondBadRequest(c, models.ErrorCodeInvalidDocument, err.Error())
		return
	}

	respondOK(c, "Chave mascarada", models.PixKeyData{
		Input:  validators.Pix.Sanitize(req.Key),
		Valid:  true,
		Type:   string(validators.Pix.DetectType(req.Key)),
		Masked: masked,
	})
}

// Random handles random key generation
// @Summary Generate a random Pix key
// @Description Generates a new random key (EVP) in canonical UUID form
// @Tags Pix
// @Produce json
// @Success 200 {object} models.StandardResponse{data=models.GeneratedData}
// @Router /pix/random [get]
func (h *PixHandler) Random(c *gin.Context) {
	respondOK(c, "Chave aleatória gerada", models.GeneratedData{
		Scheme: "pix",
		Value:  validators.Pix.GenerateRandomKey(),
	})
}

// Equal handles key equivalence comparison
// @Summary Compare two Pix keys
// @Description Reports whether two keys identify the same destination, tolerating formatting differences
// @Tags Pix
// @Accept json
// @Produce json
// @Param request body models.PixEqualRequest true "Key pair"
// @Success 200 {object} models.StandardResponse
// @Failure 400 {object} models.StandardResponse
// @Router /pix/equal [post]
func (h *PixHandler) Equal(c *gin.Context) {
	var req models.PixEqualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, models.ErrorCodeInvalidRequest, err.Error())
		return
	}

	respondOK(c, "Comparação concluída", gin.H{
		"equal": validators.Pix.Equal(req.Left, req.Right),
	})
}
