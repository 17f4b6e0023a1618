package btce

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xyths/btce/exchange"
)

var _ exchange.Exchange = exchangeView{}

func (c *Client) ExchangeName() string {
	return Name
}

func (c *Client) Label() string {
	return c.label
}

// Symbol formats a pair the way the exchange does, e.g. ("BTC", "usd") => "btc_usd".
func Symbol(base, quote string) string {
	return strings.ToLower(base) + "_" + strings.ToLower(quote)
}

func (c *Client) tickerOf(ctx context.Context, symbol string) (Ticker, error) {
	tickers, err := c.Ticker(ctx, symbol)
	if err != nil {
		return Ticker{}, err
	}
	t, ok := tickers[symbol]
	if !ok {
		return Ticker{}, errors.Errorf("no ticker for %s", symbol)
	}
	return t, nil
}

func (c *Client) LastPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	t, err := c.tickerOf(ctx, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	return t.Last, nil
}

// Last24hVolume is the 24h volume in quote currency.
func (c *Client) Last24hVolume(ctx context.Context, symbol string) (decimal.Decimal, error) {
	t, err := c.tickerOf(ctx, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	return t.Vol, nil
}

// NormalizedTicker converts the ticker of symbol into the exchange neutral form.
func (c *Client) NormalizedTicker(ctx context.Context, symbol string) (*exchange.Ticker, error) {
	t, err := c.tickerOf(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return &exchange.Ticker{
		Symbol:      symbol,
		Last:        t.Last,
		LowestAsk:   t.Sell,
		HighestBid:  t.Buy,
		BaseVolume:  t.VolCur,
		QuoteVolume: t.Vol,
		High24hr:    t.High,
		Low24hr:     t.Low,
		Time:        time.Unix(t.Updated, 0),
	}, nil
}

// SpotBalance returns the non-zero funds of the account.
func (c *Client) SpotBalance(ctx context.Context) (map[string]decimal.Decimal, error) {
	info, err := c.GetAccountInfo(ctx)
	if err != nil {
		return nil, err
	}
	balance := make(map[string]decimal.Decimal)
	for coin, amount := range info.Funds {
		if amount.IsZero() {
			continue
		}
		balance[coin] = amount
	}
	return balance, nil
}

// OpenOrders returns the active orders of symbol sorted by order id. "no orders" is not an error here.
func (c *Client) OpenOrders(ctx context.Context, symbol string) ([]exchange.Order, error) {
	raw, err := c.ActiveOrders(ctx, symbol)
	if err != nil {
		if isNoOrders(err) {
			return nil, nil
		}
		return nil, err
	}
	return convertOrders(raw)
}

func (c *Client) Buy(ctx context.Context, symbol string, price, amount decimal.Decimal) (uint64, error) {
	res, err := c.Trade(ctx, symbol, OrderTypeBuy, price, amount)
	if err != nil {
		return 0, err
	}
	return res.OrderId, nil
}

func (c *Client) Sell(ctx context.Context, symbol string, price, amount decimal.Decimal) (uint64, error) {
	res, err := c.Trade(ctx, symbol, OrderTypeSell, price, amount)
	if err != nil {
		return 0, err
	}
	return res.OrderId, nil
}

// AsExchange returns the client as an exchange.Exchange.
func (c *Client) AsExchange() exchange.Exchange {
	return exchangeView{c}
}

// exchangeView only differs from Client in the signature of CancelOrder.
type exchangeView struct {
	*Client
}

func (v exchangeView) CancelOrder(ctx context.Context, orderId uint64) error {
	_, err := v.Client.CancelOrder(ctx, orderId)
	return err
}

func isNoOrders(err error) bool {
	e, ok := errors.Cause(err).(*APIError)
	return ok && strings.EqualFold(e.Message, "no orders")
}

func convertOrders(raw map[string]Order) ([]exchange.Order, error) {
	orders := make([]exchange.Order, 0, len(raw))
	for id, o := range raw {
		n, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "order id %q", id)
		}
		orders = append(orders, ConvertOrder(n, o))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].Id < orders[j].Id })
	return orders, nil
}

// ConvertOrder maps an exchange order into the neutral form.
func ConvertOrder(id uint64, o Order) exchange.Order {
	return exchange.Order{
		Id:            id,
		Symbol:        o.Pair,
		Type:          o.Type,
		Status:        OrderStatusName(o.Status),
		Price:         o.Rate,
		InitialAmount: o.StartAmount,
		Amount:        o.Amount,
		Time:          o.Created(),
	}
}

// ConvertTrades maps TradeHistory results into neutral trades sorted by trade id.
func ConvertTrades(raw map[string]HistoryTrade) ([]exchange.Trade, error) {
	trades := make([]exchange.Trade, 0, len(raw))
	for id, t := range raw {
		n, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "trade id %q", id)
		}
		trades = append(trades, exchange.Trade{
			Id:      n,
			OrderId: t.OrderId,
			Symbol:  t.Pair,
			Type:    t.Type,
			Price:   t.Rate,
			Amount:  t.Amount,
			Time:    time.Unix(t.Timestamp, 0),
		})
	}
	sort.Slice(trades, func(i, j int) bool { return trades[i].Id < trades[j].Id })
	return trades, nil
}

func OrderStatusName(status int) string {
	switch status {
	case OrderStatusActive:
		return "active"
	case OrderStatusExecuted:
		return "executed"
	case OrderStatusCancelled:
		return "cancelled"
	case OrderStatusPartlyCancelled:
		return "partly cancelled"
	default:
		return "unknown(" + strconv.Itoa(status) + ")"
	}
}
