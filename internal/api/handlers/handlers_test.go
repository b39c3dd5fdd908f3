package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/nexconsult/brdocs-api/internal/lookup"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// envelope mirrors models.StandardResponse for decoding test responses.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return recorder, resp
}

func decodeData(t *testing.T, resp envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

// stubLookupService satisfies services.LookupServiceInterface with canned
// answers, so handler tests run without Redis or the network.
type stubLookupService struct {
	address  *lookup.Address
	company  *lookup.Company
	bank     *lookup.Bank
	banks    []lookup.Bank
	areaCode *lookup.AreaCodeInfo
	holidays []lookup.Holiday
	err      error
}

func (s *stubLookupService) Address(ctx context.Context, cep string) (*lookup.Address, error) {
	return s.address, s.err
}

func (s *stubLookupService) Company(ctx context.Context, cnpj string) (*lookup.Company, error) {
	return s.company, s.err
}

func (s *stubLookupService) Bank(ctx context.Context, code string) (*lookup.Bank, error) {
	return s.bank, s.err
}

func (s *stubLookupService) Banks(ctx context.Context) ([]lookup.Bank, error) {
	return s.banks, s.err
}

func (s *stubLookupService) SearchBanks(ctx context.Context, name string) ([]lookup.Bank, error) {
	return s.banks, s.err
}

func (s *stubLookupService) AreaCode(ctx context.Context, ddd string) (*lookup.AreaCodeInfo, error) {
	return s.areaCode, s.err
}

func (s *stubLookupService) Holidays(ctx context.Context, year int) ([]lookup.Holiday, error) {
	return s.holidays, s.err
}

func (s *stubLookupService) IsHoliday(ctx context.Context, date string) (bool, *lookup.Holiday, error) {
	if s.err != nil {
		return false, nil, s.err
	}
	for i := range s.holidays {
		if s.holidays[i].Date == date {
			return true, &s.holidays[i], nil
		}
	}
	return false, nil, nil
}

func (s *stubLookupService) NextHoliday(ctx context.Context) (*lookup.Holiday, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.holidays) == 0 {
		return nil, lookup.ErrNotFound
	}
	return &s.holidays[0], nil
}

func (s *stubLookupService) States(ctx context.Context) ([]lookup.State, error) {
	return nil, s.err
}

func (s *stubLookupService) Cities(ctx context.Context, state string) ([]lookup.City, error) {
	return nil, s.err
}

func (s *stubLookupService) FIPEBrands(ctx context.Context, vehicle lookup.VehicleType) ([]lookup.FIPEBrand, error) {
	return nil, s.err
}

func (s *stubLookupService) FIPEPrice(ctx context.Context, vehicle lookup.VehicleType, brandCode, modelCode, yearCode string) (*lookup.FIPEPrice, error) {
	return nil, s.err
}

func (s *stubLookupService) Health() map[string]interface{} {
	return map[string]interface{}{"status": "healthy"}
}
