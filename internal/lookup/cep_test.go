package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexconsult/brdocs-api/internal/validators"
)

func TestCEPLookupViaCEP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310100/json/", r.URL.Path)
		w.Write([]byte(`{
			"cep": "01310-100",
			"logradouro": "Avenida Paulista",
			"bairro": "Bela Vista",
			"localidade": "São Paulo",
			"uf": "SP",
			"ibge": "3550308",
			"ddd": "11"
		}`))
	}))
	defer server.Close()

	service := NewCEPService(newTestClient(1))
	service.viaCEP = server.URL + "/ws/%s/json/"

	address, err := service.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, "01310100", address.CEP)
	assert.Equal(t, "Avenida Paulista", address.Street)
	assert.Equal(t, "Bela Vista", address.Neighborhood)
	assert.Equal(t, "São Paulo", address.City)
	assert.Equal(t, "SP", address.State)
	assert.Equal(t, "3550308", address.IBGECode)
	assert.Equal(t, "11", address.AreaCode)
	assert.Equal(t, "viacep", address.Source)
}

func TestCEPLookupNotFound(t *testing.T) {
	// ViaCEP answers 200 with {"erro": true} for unknown CEPs.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"erro": true}`))
	}))
	defer server.Close()

	service := NewCEPService(newTestClient(1))
	service.viaCEP = server.URL + "/ws/%s/json/"

	_, err := service.Lookup(context.Background(), "01310100")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCEPLookupFallsBackToBrasilAPI(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cep/v1/01310100", r.URL.Path)
		w.Write([]byte(`{
			"cep": "01310100",
			"street": "Avenida Paulista",
			"neighborhood": "Bela Vista",
			"city": "São Paulo",
			"state": "SP"
		}`))
	}))
	defer fallback.Close()

	service := NewCEPService(newTestClient(1))
	service.viaCEP = primary.URL + "/ws/%s/json/"
	service.brasilAPICEP = fallback.URL + "/api/cep/v1/%s"

	address, err := service.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", address.Street)
	assert.Equal(t, "brasilapi", address.Source)
}

func TestCEPLookupRejectsMalformedInput(t *testing.T) {
	// No server: malformed input must fail before any network call.
	service := NewCEPService(newTestClient(1))

	_, err := service.Lookup(context.Background(), "1234")
	require.Error(t, err)
	assert.True(t, validators.IsKind(err, validators.KindBadFormat))
}
