package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexconsult/brdocs-api/internal/lookup"
)

func newReferenceRouter(stub *stubLookupService) *gin.Engine {
	handler := NewReferenceHandler(stub, testLogger())
	router := gin.New()
	router.GET("/banks", handler.Banks)
	router.GET("/banks/:code", handler.Bank)
	router.GET("/ddd/:ddd", handler.AreaCode)
	router.GET("/holidays/next", handler.NextHoliday)
	router.GET("/holidays/check", handler.CheckHoliday)
	router.GET("/holidays/:year", handler.Holidays)
	router.GET("/fipe/:vehicle/brands", handler.FIPEBrands)
	return router
}

func TestBanksEndpoint(t *testing.T) {
	stub := &stubLookupService{
		banks: []lookup.Bank{
			{ISPB: "00000000", Name: "BCO DO BRASIL S.A.", Code: 1, FullName: "Banco do Brasil S.A."},
		},
	}
	router := newReferenceRouter(stub)

	recorder, resp := doRequest(t, router, http.MethodGet, "/banks", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var banks []lookup.Bank
	decodeData(t, resp, &banks)
	require.Len(t, banks, 1)
	assert.Equal(t, 1, banks[0].Code)

	router = newReferenceRouter(&stubLookupService{err: lookup.ErrNotFound})
	recorder, _ = doRequest(t, router, http.MethodGet, "/banks/999", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAreaCodeEndpoint(t *testing.T) {
	stub := &stubLookupService{
		areaCode: &lookup.AreaCodeInfo{State: "SP", Cities: []string{"SÃO PAULO"}},
	}
	router := newReferenceRouter(stub)

	recorder, resp := doRequest(t, router, http.MethodGet, "/ddd/11", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var info lookup.AreaCodeInfo
	decodeData(t, resp, &info)
	assert.Equal(t, "SP", info.State)
}

func TestHolidaysEndpoints(t *testing.T) {
	stub := &stubLookupService{
		holidays: []lookup.Holiday{
			{Date: "2026-04-21", Name: "Tiradentes", Type: "national"},
		},
	}
	router := newReferenceRouter(stub)

	recorder, resp := doRequest(t, router, http.MethodGet, "/holidays/2026", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var holidays []lookup.Holiday
	decodeData(t, resp, &holidays)
	require.Len(t, holidays, 1)

	recorder, _ = doRequest(t, router, http.MethodGet, "/holidays/abc", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder, resp = doRequest(t, router, http.MethodGet, "/holidays/check?date=2026-04-21", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var check map[string]interface{}
	decodeData(t, resp, &check)
	assert.Equal(t, true, check["holiday"])

	recorder, _ = doRequest(t, router, http.MethodGet, "/holidays/check", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder, resp = doRequest(t, router, http.MethodGet, "/holidays/next", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var next lookup.Holiday
	decodeData(t, resp, &next)
	assert.Equal(t, "Tiradentes", next.Name)
}

func TestFIPEBrandsEndpointRejectsUnknownVehicle(t *testing.T) {
	router := newReferenceRouter(&stubLookupService{})

	recorder, resp := doRequest(t, router, http.MethodGet, "/fipe/bikes/brands", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotNil(t, resp.Error)
}
