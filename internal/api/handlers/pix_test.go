package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/validators"
)

func newPixRouter() *gin.Engine {
	handler := NewPixHandler(testLogger())
	router := gin.New()
	router.POST("/pix/validate", handler.Validate)
	router.POST("/pix/batch", handler.Batch)
	router.POST("/pix/mask", handler.Mask)
	router.POST("/pix/equal", handler.Equal)
	router.GET("/pix/random", handler.Random)
	return router
}

func TestPixValidateEndpoint(t *testing.T) {
	router := newPixRouter()

	recorder, resp := doRequest(t, router, http.MethodPost, "/pix/validate",
		models.ValidateRequest{Value: "+5511987654321"})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Chave Pix válida", resp.Message)

	var data models.PixKeyData
	decodeData(t, resp, &data)
	assert.True(t, data.Valid)
	assert.Equal(t, "phone", data.Type)
	assert.Equal(t, "SP", data.Extras["state"])

	_, resp = doRequest(t, router, http.MethodPost, "/pix/validate",
		models.ValidateRequest{Value: "not-a-key"})
	assert.Equal(t, "Chave Pix inválida", resp.Message)
	decodeData(t, resp, &data)
	assert.False(t, data.Valid)
	assert.Equal(t, "unknown_key_type", data.Reason)
}

func TestPixValidateEndpointRejectsMissingValue(t *testing.T) {
	router := newPixRouter()

	recorder, resp := doRequest(t, router, http.MethodPost, "/pix/validate", gin.H{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, models.ErrorCodeInvalidRequest, resp.Error.Code)
}

func TestPixBatchEndpoint(t *testing.T) {
	router := newPixRouter()

	recorder, resp := doRequest(t, router, http.MethodPost, "/pix/batch",
		models.PixBatchRequest{Keys: []string{"12345678909", "nope", "user@example.com"}})
	require.Equal(t, http.StatusOK, recorder.Code)

	var data models.PixBatchData
	decodeData(t, resp, &data)
	assert.Equal(t, 3, data.Total)
	assert.Equal(t, 2, data.ValidCount)
	require.Len(t, data.Results, 3)
	assert.Equal(t, "cpf", data.Results[0].Type)
	assert.False(t, data.Results[1].Valid)
	assert.Equal(t, "email", data.Results[2].Type)
}

func TestPixBatchEndpointLimits(t *testing.T) {
	router := newPixRouter()

	recorder, _ := doRequest(t, router, http.MethodPost, "/pix/batch",
		models.PixBatchRequest{Keys: []string{}})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	oversized := make([]string, maxPixBatchSize+1)
	for i := range oversized {
		oversized[i] = "12345678909"
	}
	recorder, _ = doRequest(t, router, http.MethodPost, "/pix/batch",
		models.PixBatchRequest{Keys: oversized})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPixMaskEndpoint(t *testing.T) {
	router := newPixRouter()

	recorder, resp := doRequest(t, router, http.MethodPost, "/pix/mask",
		models.PixMaskRequest{Key: "12345678909"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var data models.PixKeyData
	decodeData(t, resp, &data)
	assert.Equal(t, "***.***.*89-09", data.Masked)

	recorder, _ = doRequest(t, router, http.MethodPost, "/pix/mask",
		models.PixMaskRequest{Key: "nope"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPixEqualEndpoint(t *testing.T) {
	router := newPixRouter()

	_, resp := doRequest(t, router, http.MethodPost, "/pix/equal",
		models.PixEqualRequest{Left: "123.456.789-09", Right: "12345678909"})

	var data map[string]bool
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data["equal"])
}

func TestPixRandomEndpoint(t *testing.T) {
	router := newPixRouter()

	recorder, resp := doRequest(t, router, http.MethodGet, "/pix/random", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var data models.GeneratedData
	decodeData(t, resp, &data)
	assert.Equal(t, "pix", data.Scheme)
	assert.True(t, validators.Pix.IsValidRandomKey(data.Value))
}
