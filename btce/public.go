package btce

import (
	"context"
	"net/url"
	"strconv"
)

// Info returns server time and the trading rules of every pair.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	var info Info
	if err := c.publicRequest(ctx, "info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Ticker returns the ticker of pair, keyed by pair. Several pairs may be joined with "-".
// Empty pair means btc_usd.
func (c *Client) Ticker(ctx context.Context, pair string) (map[string]Ticker, error) {
	tickers := make(map[string]Ticker)
	if err := c.publicRequest(ctx, "ticker/"+pairPath(pair), nil, &tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

// Depth returns at most limit levels of each side of the order book. limit <= 0 means 150.
func (c *Client) Depth(ctx context.Context, pair string, limit int) (map[string]Depth, error) {
	depth := make(map[string]Depth)
	if err := c.publicRequest(ctx, "depth/"+pairPath(pair), limitQuery(limit), &depth); err != nil {
		return nil, err
	}
	return depth, nil
}

// Trades returns at most limit recent trades of pair. limit <= 0 means 150.
func (c *Client) Trades(ctx context.Context, pair string, limit int) (map[string][]PublicTrade, error) {
	trades := make(map[string][]PublicTrade)
	if err := c.publicRequest(ctx, "trades/"+pairPath(pair), limitQuery(limit), &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

func pairPath(pair string) string {
	if pair == "" {
		pair = DefaultPair
	}
	return url.PathEscape(pair)
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}
