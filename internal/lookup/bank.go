package lookup

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	brasilAPIBanksURL = "https://brasilapi.com.br/api/banks/v1"
	brasilAPIBankURL  = "https://brasilapi.com.br/api/banks/v1/%s"
)

// Bank is one entry of the national bank registry.
type Bank struct {
	ISPB     string `json:"ispb"`
	Name     string `json:"name"`
	Code     int    `json:"code"`
	FullName string `json:"fullName"`
}

// BankService resolves bank codes through BrasilAPI.
type BankService struct {
	client  *Client
	listURL string
	bankURL string
}

// NewBankService creates a bank lookup service.
func NewBankService(client *Client) *BankService {
	return &BankService{
		client:  client,
		listURL: brasilAPIBanksURL,
		bankURL: brasilAPIBankURL,
	}
}

// Lookup resolves a 3-digit bank code (leading zeros optional).
func (s *BankService) Lookup(ctx context.Context, code string) (*Bank, error) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: bank code must be numeric", ErrNotFound)
	}

	var bank Bank
	if err := s.client.GetJSON(ctx, fmt.Sprintf(s.bankURL, fmt.Sprintf("%03d", n)), &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// List returns every registered bank.
func (s *BankService) List(ctx context.Context) ([]Bank, error) {
	var banks []Bank
	if err := s.client.GetJSON(ctx, s.listURL, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

// SearchByName returns banks whose name or full name contains the query,
// case-insensitive.
func (s *BankService) SearchByName(ctx context.Context, name string) ([]Bank, error) {
	banks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(name)
	matches := make([]Bank, 0)
	for _, bank := range banks {
		if strings.Contains(strings.ToLower(bank.Name), query) ||
			strings.Contains(strings.ToLower(bank.FullName), query) {
			matches = append(matches, bank)
		}
	}
	return matches, nil
}
