// Package chainsol wraps the Solana RPC and websocket clients behind the small
// set of operations the workflows need: account reads, rent queries and atomic
// submit-and-confirm of instruction batches.
package chainsol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
)

// Client - Solana connection shared by all workflows. Read-only for the
// duration of a workflow; the ledger itself is the only mutable resource.
type Client struct {
	http    *rpc.Client
	ws      *ws.Client
	network string // mainnet, devnet, testnet
}

type Config struct {
	RPCURL  string
	WSURL   string
	Network string
}

// NewClient - connect to a single RPC environment. The websocket is required
// for confirmation subscriptions.
func NewClient(ctx context.Context, config Config) (*Client, error) {
	if config.Network == "" {
		config.Network = "mainnet"
	}
	httpClient := rpc.New(config.RPCURL)
	wsClient, err := ws.Connect(ctx, config.WSURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect websocket: %w", err)
	}

	return &Client{
		http:    httpClient,
		ws:      wsClient,
		network: config.Network,
	}, nil
}

func (c *Client) Close() {
	c.ws.Close()
}

// HealthCheck - verify the RPC endpoint responds before starting a workflow
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.http.GetHealth(ctx)
	return err
}

// ExplorerURL - generate explorer URL for a transaction signature
func (c *Client) ExplorerURL(signature string) string {
	baseURL := "https://explorer.solana.com/tx/"
	switch c.network {
	case "devnet":
		return baseURL + signature + "?cluster=devnet"
	case "testnet":
		return baseURL + signature + "?cluster=testnet"
	default:
		return baseURL + signature
	}
}
