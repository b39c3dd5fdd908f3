package lookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nexconsult/brdocs-api/internal/validators"
)

const (
	brasilAPIDDDURL      = "https://brasilapi.com.br/api/ddd/v1/%s"
	brasilAPIHolidaysURL = "https://brasilapi.com.br/api/feriados/v1/%d"
	brasilAPIStatesURL   = "https://brasilapi.com.br/api/ibge/uf/v1"
	brasilAPICitiesURL   = "https://brasilapi.com.br/api/ibge/municipios/v1/%s"
)

// validStates holds every Brazilian state abbreviation.
var validStates = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

// AreaCodeInfo is the result of a DDD lookup: the state it belongs to and
// the cities it serves.
type AreaCodeInfo struct {
	State  string   `json:"state"`
	Cities []string `json:"cities"`
}

// Holiday is one national holiday.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// State is one IBGE federative unit.
type State struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"sigla"`
	Name         string `json:"nome"`
}

// City is one IBGE municipality.
type City struct {
	Name     string `json:"nome"`
	IBGECode string `json:"codigo_ibge"`
}

// ReferenceService resolves DDD, holiday and IBGE geographic reference data
// through BrasilAPI.
type ReferenceService struct {
	client      *Client
	dddURL      string
	holidaysURL string
	statesURL   string
	citiesURL   string
}

// NewReferenceService creates a reference-data lookup service.
func NewReferenceService(client *Client) *ReferenceService {
	return &ReferenceService{
		client:      client,
		dddURL:      brasilAPIDDDURL,
		holidaysURL: brasilAPIHolidaysURL,
		statesURL:   brasilAPIStatesURL,
		citiesURL:   brasilAPICitiesURL,
	}
}

// AreaCode resolves a DDD into its state and city list. The code is checked
// against the national table before the network call.
func (s *ReferenceService) AreaCode(ctx context.Context, ddd string) (*AreaCodeInfo, error) {
	if _, err := validators.Phone.StateForAreaCode(ddd); err != nil {
		return nil, err
	}

	var info AreaCodeInfo
	if err := s.client.GetJSON(ctx, fmt.Sprintf(s.dddURL, ddd), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Holidays returns every national holiday of the given year.
func (s *ReferenceService) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	var holidays []Holiday
	if err := s.client.GetJSON(ctx, fmt.Sprintf(s.holidaysURL, year), &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

// IsHoliday reports whether the date (YYYY-MM-DD) is a national holiday.
func (s *ReferenceService) IsHoliday(ctx context.Context, date string) (bool, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrNotFound)
	}

	holidays, err := s.Holidays(ctx, parsed.Year())
	if err != nil {
		return false, err
	}
	for _, h := range holidays {
		if h.Date == date {
			return true, nil
		}
	}
	return false, nil
}

// NextHoliday returns the first national holiday on or after today.
func (s *ReferenceService) NextHoliday(ctx context.Context, now time.Time) (*Holiday, error) {
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
		return nil, ErrNotFound
	}
	return &holidays[0], nil
}

// States returns every federative unit.
func (s *ReferenceService) States(ctx context.Context) ([]State, error) {
	var states []State
	if err := s.client.GetJSON(ctx, s.statesURL, &states); err != nil {
		return nil, err
	}
	return states, nil
}

// Cities returns every municipality of the given state abbreviation.
func (s *ReferenceService) Cities(ctx context.Context, state string) ([]City, error) {
	state = strings.ToUpper(strings.TrimSpace(state))
	if !validStates[state] {
		return nil, fmt.Errorf("%w: invalid state abbreviation %q", ErrNotFound, state)
	}

	var cities []City
	if err := s.client.GetJSON(ctx, fmt.Sprintf(s.citiesURL, state), &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// SearchCities returns the municipalities of a state whose name contains the
// query, case-insensitive.
func (s *ReferenceService) SearchCities(ctx context.Context, state, name string) ([]City, error) {
	cities, err := s.Cities(ctx, state)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(name)
	matches := make([]City, 0)
	for _, city := range cities {
		if strings.Contains(strings.ToLower(city.Name), query) {
			matches = append(matches, city)
		}
	}
	return matches, nil
}
