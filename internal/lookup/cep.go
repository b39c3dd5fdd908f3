package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexconsult/brdocs-api/internal/validators"
)

const (
	viaCEPURL       = "https://viacep.com.br/ws/%s/json/"
	brasilAPICEPURL = "https://brasilapi.com.br/api/cep/v1/%s"
)

// Address is the normalized result of a CEP lookup.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	IBGECode     string `json:"ibge_code,omitempty"`
	AreaCode     string `json:"area_code,omitempty"`
	Source       string `json:"source"`
}

// CEPService resolves CEP values to addresses, ViaCEP first with BrasilAPI
// as fallback.
type CEPService struct {
	client       *Client
	viaCEP       string
	brasilAPICEP string
}

// NewCEPService creates a CEP lookup service.
func NewCEPService(client *Client) *CEPService {
	return &CEPService{
		client:       client,
		viaCEP:       viaCEPURL,
		brasilAPICEP: brasilAPICEPURL,
	}
}

// viaCEPResponse mirrors the ViaCEP JSON shape. ViaCEP signals a missing CEP
// with {"erro": true} and HTTP 200.
type viaCEPResponse struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	IBGE        string `json:"ibge"`
	DDD         string `json:"ddd"`
	Erro        bool   `json:"erro"`
}

type brasilAPICEPResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Lookup resolves a CEP (formatted or not) into an address. The value is
// validated first, so malformed input fails before any network call.
func (s *CEPService) Lookup(ctx context.Context, cep string) (*Address, error) {
	cleaned := validators.CEP.Clean(cep)
	if err := validators.CEP.Validate(cleaned); err != nil {
		return nil, err
	}

	var primary viaCEPResponse
	err := s.client.GetJSON(ctx, fmt.Sprintf(s.viaCEP, cleaned), &primary)
	if err == nil {
		if primary.Erro {
			return nil, fmt.Errorf("%w: cep %s", ErrNotFound, cleaned)
		}
		return &Address{
			CEP:          validators.OnlyDigits(primary.CEP),
			Street:       primary.Logradouro,
			Complement:   primary.Complemento,
			Neighborhood: primary.Bairro,
			City:         primary.Localidade,
			State:        primary.UF,
			IBGECode:     primary.IBGE,
			AreaCode:     primary.DDD,
			Source:       "viacep",
		}, nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) {
		return nil, err
	}

	// ViaCEP is down, try BrasilAPI.
	var fallback brasilAPICEPResponse
	if err := s.client.GetJSON(ctx, fmt.Sprintf(s.brasilAPICEP, cleaned), &fallback); err != nil {
		return nil, err
	}
	return &Address{
		CEP:          validators.OnlyDigits(fallback.CEP),
		Street:       fallback.Street,
		Neighborhood: fallback.Neighborhood,
		City:         fallback.City,
		State:        fallback.State,
		Source:       "brasilapi",
	}, nil
}
