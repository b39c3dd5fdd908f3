package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/config"
	"github.com/nexconsult/brdocs-api/internal/lookup"
)

// LookupService fronts the external lookup clients with the cache layer.
// Every result that came from an upstream API is stored under a
// namespaced key so repeated queries do not hit the provider again.
type LookupService struct {
	config    config.LookupConfig
	cache     CacheServiceInterface
	logger    *logrus.Logger
	address   *lookup.CEPService
	company   *lookup.CompanyService
	bank      *lookup.BankService
	reference *lookup.ReferenceService
	fipe      *lookup.FIPEService
}

// NewLookupService creates the cached lookup service
func NewLookupService(cfg config.LookupConfig, cache CacheServiceInterface, logger *logrus.Logger) *LookupService {
	client := lookup.NewClient(cfg.Timeout, cfg.MaxRetries, cfg.RetryDelay, logger)

	return &LookupService{
		config:    cfg,
		cache:     cache,
		logger:    logger,
		address:   lookup.NewCEPService(client),
		company:   lookup.NewCompanyService(client),
		bank:      lookup.NewBankService(client),
		reference: lookup.NewReferenceService(client),
		fipe:      lookup.NewFIPEService(client),
	}
}

// cached runs fetch unless the key is already cached, storing fresh
// results as JSON. Cache failures only log; the lookup still answers.
func cached[T any](ctx context.Context, s *LookupService, key string, fetch func() (T, error)) (T, error) {
	var zero T

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var out T
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out, nil
		}
		s.logger.WithField("key", key).Warn("Discarding malformed cache entry")
		_ = s.cache.Delete(ctx, key)
	}

	out, err := fetch()
	if err != nil {
		return zero, err
	}

	if raw, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, key, string(raw)); err != nil {
			s.logger.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Warn("Failed to cache lookup result")
		}
	}

	return out, nil
}

// Address resolves a CEP into an address
func (s *LookupService) Address(ctx context.Context, cep string) (*lookup.Address, error) {
	return cached(ctx, s, "cep:"+cep, func() (*lookup.Address, error) {
		return s.address.Lookup(ctx, cep)
	})
}

// Company resolves a CNPJ into registration data
func (s *LookupService) Company(ctx context.Context, cnpj string) (*lookup.Company, error) {
	return cached(ctx, s, "cnpj:"+cnpj, func() (*lookup.Company, error) {
		return s.company.Lookup(ctx, cnpj, s.config.UseReceita)
	})
}

// Bank resolves a COMPE bank code
func (s *LookupService) Bank(ctx context.Context, code string) (*lookup.Bank, error) {
	return cached(ctx, s, "bank:"+code, func() (*lookup.Bank, error) {
		return s.bank.Lookup(ctx, code)
	})
}

// Banks lists all registered banks
func (s *LookupService) Banks(ctx context.Context) ([]lookup.Bank, error) {
	return cached(ctx, s, "banks:all", func() ([]lookup.Bank, error) {
		return s.bank.List(ctx)
	})
}

// SearchBanks finds banks whose name contains the query
func (s *LookupService) SearchBanks(ctx context.Context, name string) ([]lookup.Bank, error) {
	banks, err := s.Banks(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(name)
	matches := make([]lookup.Bank, 0)
	for _, b := range banks {
		if strings.Contains(strings.ToLower(b.Name), query) || strings.Contains(strings.ToLower(b.FullName), query) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

// AreaCode resolves a DDD into its state and cities
func (s *LookupService) AreaCode(ctx context.Context, ddd string) (*lookup.AreaCodeInfo, error) {
	return cached(ctx, s, "ddd:"+ddd, func() (*lookup.AreaCodeInfo, error) {
		return s.reference.AreaCode(ctx, ddd)
	})
}

// Holidays lists the national holidays of a year
func (s *LookupService) Holidays(ctx context.Context, year int) ([]lookup.Holiday, error) {
	return cached(ctx, s, fmt.Sprintf("holidays:%d", year), func() ([]lookup.Holiday, error) {
		return s.reference.Holidays(ctx, year)
	})
}

// IsHoliday reports whether a YYYY-MM-DD date is a national holiday,
// returning the matched holiday when it is.
func (s *LookupService) IsHoliday(ctx context.Context, date string) (bool, *lookup.Holiday, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false, nil, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}

	holidays, err := s.Holidays(ctx, parsed.Year())
	if err != nil {
		return false, nil, err
	}
	for i := range holidays {
		if holidays[i].Date == date {
			return true, &holidays[i], nil
		}
	}
	return false, nil, nil
}

// NextHoliday returns the next national holiday on or after today.
func (s *LookupService) NextHoliday(ctx context.Context) (*lookup.Holiday, error) {
	now := time.Now()
	today := now.Format("2006-01-02")

	holidays, err := s.Holidays(ctx, now.Year())
	if err != nil {
		return nil, err
	}
	for i := range holidays {
		if holidays[i].Date >= today {
			return &holidays[i], nil
		}
	}

	// Year is over, the next holiday is in January.
	holidays, err = s.Holidays(ctx, now.Year()+1)
	if err != nil {
		return nil, err
	}
	if len(holidays) == 0 {
		return nil, lookup.ErrNotFound
	}
	return &holidays[0], nil
}

// States lists the Brazilian federative units
func (s *LookupService) States(ctx context.Context) ([]lookup.State, error) {
	return cached(ctx, s, "states:all", func() ([]lookup.State, error) {
		return s.reference.States(ctx)
	})
}

// Cities lists the municipalities of a state
func (s *LookupService) Cities(ctx context.Context, state string) ([]lookup.City, error) {
	return cached(ctx, s, "cities:"+state, func() ([]lookup.City, error) {
		return s.reference.Cities(ctx, state)
	})
}

// FIPEBrands lists vehicle brands of a FIPE table
func (s *LookupService) FIPEBrands(ctx context.Context, vehicle lookup.VehicleType) ([]lookup.FIPEBrand, error) {
	return cached(ctx, s, "fipe:brands:"+string(vehicle), func() ([]lookup.FIPEBrand, error) {
		return s.fipe.Brands(ctx, vehicle)
	})
}

// FIPEPrice returns the FIPE price of one vehicle
func (s *LookupService) FIPEPrice(ctx context.Context, vehicle lookup.VehicleType, brandCode, modelCode, yearCode string) (*lookup.FIPEPrice, error) {
	key := fmt.Sprintf("fipe:price:%s:%s:%s:%s", vehicle, brandCode, modelCode, yearCode)
	return cached(ctx, s, key, func() (*lookup.FIPEPrice, error) {
		return s.fipe.Price(ctx, vehicle, brandCode, modelCode, yearCode)
	})
}

// Health returns service health status
func (s *LookupService) Health() map[string]interface{} {
	return map[string]interface{}{
		"status":      "healthy",
		"max_retries": s.config.MaxRetries,
		"timeout":     s.config.Timeout.String(),
		"cache_ttl":   s.config.CacheTTL.String(),
	}
}
