package btce

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// GetAccountInfo returns balances, key rights and counters of the account (method getInfo).
func (c *Client) GetAccountInfo(ctx context.Context) (*AccountInfo, error) {
	var info AccountInfo
	if err := c.privateRequest(ctx, methodGetInfo, url.Values{}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Trade places a limit order. side is "buy" or "sell".
func (c *Client) Trade(ctx context.Context, pair, side string, rate, amount decimal.Decimal) (*TradeResult, error) {
	if pair == "" {
		return nil, invalidParam("trade: empty pair")
	}
	if side != OrderTypeBuy && side != OrderTypeSell {
		return nil, invalidParam("trade: unknown order type %q", side)
	}
	if !rate.IsPositive() {
		return nil, invalidParam("trade: rate must be positive, got %s", rate)
	}
	if !amount.IsPositive() {
		return nil, invalidParam("trade: amount must be positive, got %s", amount)
	}
	params := url.Values{
		"pair":   {pair},
		"type":   {side},
		"rate":   {rate.String()},
		"amount": {amount.String()},
	}
	var res TradeResult
	if err := c.privateRequest(ctx, methodTrade, params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ActiveOrders returns the open orders keyed by order id. Empty pair means all pairs.
// The exchange reports an account without open orders as the error "no orders".
func (c *Client) ActiveOrders(ctx context.Context, pair string) (map[string]Order, error) {
	params := url.Values{}
	if pair != "" {
		params.Set("pair", pair)
	}
	orders := make(map[string]Order)
	if err := c.privateRequest(ctx, methodActiveOrders, params, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderInfo returns one order keyed by its id.
func (c *Client) OrderInfo(ctx context.Context, orderId uint64) (map[string]Order, error) {
	if orderId == 0 {
		return nil, invalidParam("order info: zero order id")
	}
	orders := make(map[string]Order)
	if err := c.privateRequest(ctx, methodOrderInfo, orderIdParams(orderId), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderId uint64) (*CancelResult, error) {
	if orderId == 0 {
		return nil, invalidParam("cancel order: zero order id")
	}
	var res CancelResult
	if err := c.privateRequest(ctx, methodCancelOrder, orderIdParams(orderId), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TradeHistory returns the account's trades keyed by trade id.
func (c *Client) TradeHistory(ctx context.Context, p HistoryParams) (map[string]HistoryTrade, error) {
	params, err := historyValues(p, true)
	if err != nil {
		return nil, err
	}
	trades := make(map[string]HistoryTrade)
	if err := c.privateRequest(ctx, methodTradeHistory, params, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// TransHistory returns deposits, withdrawals and other balance movements keyed by transaction id.
func (c *Client) TransHistory(ctx context.Context, p HistoryParams) (map[string]Transaction, error) {
	params, err := historyValues(p, false)
	if err != nil {
		return nil, err
	}
	txs := make(map[string]Transaction)
	if err := c.privateRequest(ctx, methodTransHistory, params, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func orderIdParams(orderId uint64) url.Values {
	return url.Values{"order_id": {strconv.FormatUint(orderId, 10)}}
}

// historyValues encodes p. Zero Count and empty Order take the defaults (1000, DESC).
func historyValues(p HistoryParams, withPair bool) (url.Values, error) {
	if p.From < 0 || p.Count < 0 || p.FromId < 0 || p.EndId < 0 || p.Since < 0 || p.End < 0 {
		return nil, invalidParam("history: negative value in %+v", p)
	}
	if p.Count == 0 {
		p.Count = DefaultHistoryCount
	}
	switch p.Order {
	case "":
		p.Order = SortDesc
	case SortAsc, SortDesc:
	default:
		return nil, invalidParam("history: unknown order %q", p.Order)
	}
	if p.End > 0 && p.Since > p.End {
		return nil, invalidParam("history: since %d after end %d", p.Since, p.End)
	}

	v := url.Values{}
	v.Set("from", strconv.FormatInt(p.From, 10))
	v.Set("count", strconv.FormatInt(p.Count, 10))
	v.Set("from_id", strconv.FormatInt(p.FromId, 10))
	if p.EndId > 0 {
		v.Set("end_id", strconv.FormatInt(p.EndId, 10))
	}
	v.Set("order", p.Order)
	v.Set("since", strconv.FormatInt(p.Since, 10))
	if p.End > 0 {
		v.Set("end", strconv.FormatInt(p.End, 10))
	}
	if withPair && p.Pair != "" {
		v.Set("pair", p.Pair)
	}
	return v, nil
}
