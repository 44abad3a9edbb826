package api

import (
	"context"
	"net/http"

	"github.com/vpotapovs/roamer/internal/client/models"
)

type walletRequestBody struct {
	Amount float64 `json:"amount"`
}

// WalletMe fetches the authoritative wallet balance.
func (c *Client) WalletMe(ctx context.Context) (*models.Wallet, error) {
	var out models.Wallet
	if err := c.do(ctx, http.MethodGet, "/wallet/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WalletRequests lists the user's top-up requests.
func (c *Client) WalletRequests(ctx context.Context) ([]models.WalletRequest, error) {
	var out []models.WalletRequest
	if err := c.do(ctx, http.MethodGet, "/wallet/requests", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateWalletRequest files a top-up request for the given amount.
func (c *Client) CreateWalletRequest(ctx context.Context, amount float64) (*models.WalletRequest, error) {
	var out models.WalletRequest
	if err := c.do(ctx, http.MethodPost, "/wallet/requests", nil, walletRequestBody{Amount: amount}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WalletTransactions lists the wallet ledger.
func (c *Client) WalletTransactions(ctx context.Context, page, limit int) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/wallet/transactions", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
