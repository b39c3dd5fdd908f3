package lookup

import (
	"context"
	"fmt"
	"strings"
)

const (
	parallelumFIPEURL  = "https://parallelum.com.br/fipe/api/v1"
	brasilAPIFIPEPrice = "https://brasilapi.com.br/api/fipe/preco/v1/%s"
)

// VehicleType selects which FIPE table to query.
type VehicleType string

const (
	VehicleCars        VehicleType = "carros"
	VehicleMotorcycles VehicleType = "motos"
	VehicleTrucks      VehicleType = "caminhoes"
)

// FIPEBrand is one vehicle brand of a FIPE table.
type FIPEBrand struct {
	Name string `json:"nome"`
	Code string `json:"codigo"`
}

// FIPEModel is one vehicle model of a brand.
type FIPEModel struct {
	Name string `json:"nome"`
	Code int    `json:"codigo"`
}

// FIPEModels is the model/year listing of a brand.
type FIPEModels struct {
	Models []FIPEModel `json:"modelos"`
	Years  []FIPEYear  `json:"anos"`
}

// FIPEYear is one model-year entry.
type FIPEYear struct {
	Name string `json:"nome"`
	Code string `json:"codigo"`
}

// FIPEPrice is the priced listing of one vehicle.
type FIPEPrice struct {
	Value     string `json:"Valor"`
	Brand     string `json:"Marca"`
	Model     string `json:"Modelo"`
	ModelYear int    `json:"AnoModelo"`
	Fuel      string `json:"Combustivel"`
	FIPECode  string `json:"CodigoFipe"`
	Reference string `json:"MesReferencia"`
}

// FIPEHistoryEntry is one price point of a FIPE-code history (BrasilAPI).
type FIPEHistoryEntry struct {
	Value     string `json:"valor"`
	Brand     string `json:"marca"`
	Model     string `json:"modelo"`
	ModelYear int    `json:"anoModelo"`
	Fuel      string `json:"combustivel"`
	FIPECode  string `json:"codigoFipe"`
	Reference string `json:"mesReferencia"`
}

// FIPEService resolves vehicle price data from the FIPE tables, via the
// Parallelum API with BrasilAPI for FIPE-code history.
type FIPEService struct {
	client       *Client
	parallelum   string
	priceHistory string
}

// NewFIPEService creates a FIPE lookup service.
func NewFIPEService(client *Client) *FIPEService {
	return &FIPEService{
		client:       client,
		parallelum:   parallelumFIPEURL,
		priceHistory: brasilAPIFIPEPrice,
	}
}

// Brands lists every brand of the given vehicle type.
func (s *FIPEService) Brands(ctx context.Context, vehicle VehicleType) ([]FIPEBrand, error) {
	var brands []FIPEBrand
	url := fmt.Sprintf("%s/%s/marcas", s.parallelum, vehicle)
	if err := s.client.GetJSON(ctx, url, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// Models lists the models and years of a brand.
func (s *FIPEService) Models(ctx context.Context, vehicle VehicleType, brandCode string) (*FIPEModels, error) {
	var models FIPEModels
	url := fmt.Sprintf("%s/%s/marcas/%s/modelos", s.parallelum, vehicle, brandCode)
	if err := s.client.GetJSON(ctx, url, &models); err != nil {
		return nil, err
	}
	return &models, nil
}

// Years lists the available years of a model.
func (s *FIPEService) Years(ctx context.Context, vehicle VehicleType, brandCode, modelCode string) ([]FIPEYear, error) {
	var years []FIPEYear
	url := fmt.Sprintf("%s/%s/marcas/%s/modelos/%s/anos", s.parallelum, vehicle, brandCode, modelCode)
	if err := s.client.GetJSON(ctx, url, &years); err != nil {
		return nil, err
	}
	return years, nil
}

// Price returns the current FIPE price of one vehicle.
func (s *FIPEService) Price(ctx context.Context, vehicle VehicleType, brandCode, modelCode, yearCode string) (*FIPEPrice, error) {
	var price FIPEPrice
	url := fmt.Sprintf("%s/%s/marcas/%s/modelos/%s/anos/%s", s.parallelum, vehicle, brandCode, modelCode, yearCode)
	if err := s.client.GetJSON(ctx, url, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

// History returns the price history of a FIPE code (e.g. "004340-1").
func (s *FIPEService) History(ctx context.Context, fipeCode string) ([]FIPEHistoryEntry, error) {
	var history []FIPEHistoryEntry
	if err := s.client.GetJSON(ctx, fmt.Sprintf(s.priceHistory, fipeCode), &history); err != nil {
		return nil, err
	}
	return history, nil
}

// SearchBrands returns the brands of a vehicle type whose name contains the
// query, case-insensitive.
func (s *FIPEService) SearchBrands(ctx context.Context, vehicle VehicleType, name string) ([]FIPEBrand, error) {
	brands, err := s.Brands(ctx, vehicle)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(name)
	matches := make([]FIPEBrand, 0)
	for _, brand := range brands {
		if strings.Contains(strings.ToLower(brand.Name), query) {
			matches = append(matches, brand)
		}
	}
	return matches, nil
}
