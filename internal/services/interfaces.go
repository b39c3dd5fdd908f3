package services

import (
	"context"

	"github.com/nexconsult/brdocs-api/internal/lookup"
)

// CacheServiceInterface defines the interface for cache service
type CacheServiceInterface interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value string) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear clears all cache entries
	Clear(ctx context.Context) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats returns cache statistics
	GetStats(ctx context.Context) (map[string]interface{}, error)

	// Health returns cache service health status
	Health() map[string]interface{}
}

// LookupServiceInterface defines the interface for the cached external
// lookup service (addresses, companies, banks, reference data, FIPE).
type LookupServiceInterface interface {
	// Address resolves a CEP into an address
	Address(ctx context.Context, cep string) (*lookup.Address, error)

	// Company resolves a CNPJ into registration data
	Company(ctx context.Context, cnpj string) (*lookup.Company, error)

	// Bank resolves a COMPE bank code
	Bank(ctx context.Context, code string) (*lookup.Bank, error)

	// Banks lists all registered banks
	Banks(ctx context.Context) ([]lookup.Bank, error)

	// SearchBanks finds banks whose name contains the query
	SearchBanks(ctx context.Context, name string) ([]lookup.Bank, error)

	// AreaCode resolves a DDD into its state and cities
	AreaCode(ctx context.Context, ddd string) (*lookup.AreaCodeInfo, error)

	// Holidays lists the national holidays of a year
	Holidays(ctx context.Context, year int) ([]lookup.Holiday, error)

	// IsHoliday reports whether a YYYY-MM-DD date is a national holiday
	IsHoliday(ctx context.Context, date string) (bool, *lookup.Holiday, error)

	// NextHoliday returns the next national holiday on or after now
	NextHoliday(ctx context.Context) (*lookup.Holiday, error)

	// States lists the Brazilian federative units
	States(ctx context.Context) ([]lookup.State, error)

	// Cities lists the municipalities of a state
	Cities(ctx context.Context, state string) ([]lookup.City, error)

	// FIPEBrands lists vehicle brands of a FIPE table
	FIPEBrands(ctx context.Context, vehicle lookup.VehicleType) ([]lookup.FIPEBrand, error)

	// FIPEPrice returns the FIPE price of one vehicle
	FIPEPrice(ctx context.Context, vehicle lookup.VehicleType, brandCode, modelCode, yearCode string) (*lookup.FIPEPrice, error)

	// Health returns service health status
	Health() map[string]interface{}
}
