package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nexconsult/brdocs-api/internal/validators"
)

const (
	brasilAPICNPJURL = "https://brasilapi.com.br/api/cnpj/v1/%s"
	receitaWSURL     = "https://www.receitaws.com.br/v1/cnpj/%s"
)

// Company is the normalized result of a CNPJ lookup.
type Company struct {
	CNPJ         string    `json:"cnpj"`
	LegalName    string    `json:"legal_name"`
	TradeName    string    `json:"trade_name,omitempty"`
	Status       string    `json:"status"`
	OpeningDate  string    `json:"opening_date,omitempty"`
	ShareCapital float64   `json:"share_capital,omitempty"`
	MainActivity string    `json:"main_activity,omitempty"`
	ActivityCode string    `json:"activity_code,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Street       string    `json:"street,omitempty"`
	Number       string    `json:"number,omitempty"`
	Complement   string    `json:"complement,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	CEP          string    `json:"cep,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Partners     []Partner `json:"partners,omitempty"`
	Source       string    `json:"source"`
}

// Partner is one entry of a company's ownership board.
type Partner struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// CompanyService resolves CNPJ numbers to registry data, BrasilAPI by
// default with ReceitaWS as an alternative source.
type CompanyService struct {
	client    *Client
	brasilAPI string
	receitaWS string
}

// NewCompanyService creates a CNPJ lookup service.
func NewCompanyService(client *Client) *CompanyService {
	return &CompanyService{
		client:    client,
		brasilAPI: brasilAPICNPJURL,
		receitaWS: receitaWSURL,
	}
}

type brasilAPICNPJResponse struct {
	CNPJ             string          `json:"cnpj"`
	RazaoSocial      string          `json:"razao_social"`
	NomeFantasia     string          `json:"nome_fantasia"`
	Situacao         string          `json:"descricao_situacao_cadastral"`
	DataInicio       string          `json:"data_inicio_atividade"`
	CapitalSocial    float64         `json:"capital_social"`
	CNAEDescricao    string          `json:"cnae_fiscal_descricao"`
	CNAECodigo       json.RawMessage `json:"cnae_fiscal"`
	Municipio        string          `json:"municipio"`
	UF               string          `json:"uf"`
	Logradouro       string          `json:"logradouro"`
	Numero           string          `json:"numero"`
	Complemento      string          `json:"complemento"`
	Bairro           string          `json:"bairro"`
	CEP              string          `json:"cep"`
	Email            string          `json:"email"`
	Telefone         string          `json:"ddd_telefone_1"`
	QSA              []brasilAPIQSA  `json:"qsa"`
}

type brasilAPIQSA struct {
	Nome         string `json:"nome_socio"`
	Qualificacao string `json:"qualificacao_socio"`
}

type receitaWSResponse struct {
	CNPJ          string              `json:"cnpj"`
	Nome          string              `json:"nome"`
	Fantasia      string              `json:"fantasia"`
	Situacao      string              `json:"situacao"`
	Abertura      string              `json:"abertura"`
	CapitalSocial string              `json:"capital_social"`
	Atividades    []receitaWSActivity `json:"atividade_principal"`
	Municipio     string              `json:"municipio"`
	UF            string              `json:"uf"`
	Logradouro    string              `json:"logradouro"`
	Numero        string              `json:"numero"`
	Complemento   string              `json:"complemento"`
	Bairro        string              `json:"bairro"`
	CEP           string              `json:"cep"`
	Email         string              `json:"email"`
	Telefone      string              `json:"telefone"`
	QSA           []receitaWSQSA      `json:"qsa"`
}

type receitaWSActivity struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

type receitaWSQSA struct {
	Nome string `json:"nome"`
	Qual string `json:"qual"`
}

// Lookup resolves a CNPJ (formatted or not) into company registry data. The
// value is validated first, so malformed input fails before any network
// call. Set useReceitaWS to query ReceitaWS instead of BrasilAPI.
func (s *CompanyService) Lookup(ctx context.Context, cnpj string, useReceitaWS bool) (*Company, error) {
	cleaned := validators.CNPJ.Clean(cnpj)
	if err := validators.CNPJ.Validate(cleaned); err != nil {
		return nil, err
	}

	if useReceitaWS {
		return s.lookupReceitaWS(ctx, cleaned)
	}
	return s.lookupBrasilAPI(ctx, cleaned)
}

func (s *CompanyService) lookupBrasilAPI(ctx context.Context, cnpj string) (*Company, error) {
	var resp brasilAPICNPJResponse
	if err := s.client.GetJSON(ctx, fmt.Sprintf(s.brasilAPI, cnpj), &resp); err != nil {
		return nil, err
	}

	partners := make([]Partner, 0, len(resp.QSA))
	for _, p := range resp.QSA {
		partners = append(partners, Partner{Name: p.Nome, Role: p.Qualificacao})
	}

	return &Company{
		CNPJ:         cnpj,
		LegalName:    resp.RazaoSocial,
		TradeName:    resp.NomeFantasia,
		Status:       resp.Situacao,
		OpeningDate:  resp.DataInicio,
		ShareCapital: resp.CapitalSocial,
		MainActivity: resp.CNAEDescricao,
		ActivityCode: string(resp.CNAECodigo),
		City:         resp.Municipio,
		State:        resp.UF,
		Street:       resp.Logradouro,
		Number:       resp.Numero,
		Complement:   resp.Complemento,
		Neighborhood: resp.Bairro,
		CEP:          resp.CEP,
		Email:        resp.Email,
		Phone:        resp.Telefone,
		Partners:     partners,
		Source:       "brasilapi",
	}, nil
}

func (s *CompanyService) lookupReceitaWS(ctx context.Context, cnpj string) (*Company, error) {
	var resp receitaWSResponse
	if err := s.client.GetJSON(ctx, fmt.Sprintf(s.receitaWS, cnpj), &resp); err != nil {
		return nil, err
	}

	partners := make([]Partner, 0, len(resp.QSA))
	for _, p := range resp.QSA {
		partners = append(partners, Partner{Name: p.Nome, Role: p.Qual})
	}

	company := &Company{
		CNPJ:         cnpj,
		LegalName:    resp.Nome,
		TradeName:    resp.Fantasia,
		Status:       resp.Situacao,
		OpeningDate:  resp.Abertura,
		ShareCapital: parseShareCapital(resp.CapitalSocial),
		City:         resp.Municipio,
		State:        resp.UF,
		Street:       resp.Logradouro,
		Number:       resp.Numero,
		Complement:   resp.Complemento,
		Neighborhood: resp.Bairro,
		CEP:          resp.CEP,
		Email:        resp.Email,
		Phone:        resp.Telefone,
		Partners:     partners,
		Source:       "receitaws",
	}
	if len(resp.Atividades) > 0 {
		company.MainActivity = resp.Atividades[0].Text
		company.ActivityCode = resp.Atividades[0].Code
	}
	return company, nil
}

// parseShareCapital reads ReceitaWS capital values, which arrive as strings
// in either "1000000.00" or "1.000.000,00" form. Unparseable input yields 0.
func parseShareCapital(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.Replace(raw, ",", ".", 1)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
