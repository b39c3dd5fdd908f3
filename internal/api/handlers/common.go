package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/lookup"
	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/validators"
)

// reasonOf extracts the machine-readable rejection reason of a
// validation error, empty for foreign errors.
func reasonOf(err error) string {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return string(verr.Kind)
	}
	return ""
}

// respondBadRequest answers 400 with the standard error envelope.
func respondBadRequest(c *gin.Context, code, message string) {
	resp := models.NewErrorResponse(code, message, nil)
	resp.SetRequestID(c.GetString("request_id"))
	c.JSON(http.StatusBadRequest, resp)
}

// respondLookupError maps lookup failures onto HTTP statuses: validation
// errors become 400, ErrNotFound 404, anything else 502.
func respondLookupError(c *gin.Context, logger *logrus.Logger, err error) {
	requestID := c.GetString("request_id")

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		respondBadRequest(c, models.ErrorCodeInvalidDocument, verr.Message)
		return
	}

	logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"path":       c.Request.URL.Path,
		"error":      err.Error(),
	}).Warn("Lookup failed")

	if errors.Is(err, lookup.ErrNotFound) {
		resp := models.NewErrorResponse(models.ErrorCodeDocumentNotFound, "Registro não encontrado", nil)
		resp.SetRequestID(requestID)
		c.JSON(http.StatusNotFound, resp)
		return
	}

	resp := models.NewErrorResponse(models.ErrorCodeUpstreamError, "Falha ao consultar o serviço externo", nil)
	resp.SetRequestID(requestID)
	c.JSON(http.StatusBadGateway, resp)
}

// respondOK answers 200 with the standard success envelope.
func respondOK(c *gin.Context, message string, data interface{}) {
	resp := models.NewSuccessResponse(message, data)
	resp.SetRequestID(c.GetString("request_id"))
	c.JSON(http.StatusOK, resp)
}
