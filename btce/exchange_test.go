package btce

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestClient_AsExchange(t *testing.T) {
	tr := &stubTransport{handler: func(c call) (json.RawMessage, error) {
		switch {
		case strings.HasSuffix(c.url, "/ticker/ltc_usd"):
			return json.RawMessage(`{"ltc_usd":{"last":3.1,"vol":1200.5,"vol_cur":390,"buy":3.09,"sell":3.11,"updated":1370816308}}`), nil
		case c.method == "POST" && strings.Contains(c.body, "method=getInfo"):
			return json.RawMessage(`{"success":1,"return":{"funds":{"usd":325,"btc":0,"ltc":12.5}}}`), nil
		case c.method == "POST" && strings.Contains(c.body, "method=ActiveOrders"):
			return json.RawMessage(`{"success":0,"error":"no orders"}`), nil
		case c.method == "POST" && strings.Contains(c.body, "method=CancelOrder"):
			return json.RawMessage(`{"success":1,"return":{"order_id":7,"funds":{}}}`), nil
		case c.method == "POST" && strings.Contains(c.body, "method=Trade"):
			return json.RawMessage(`{"success":1,"return":{"received":0,"remains":1,"order_id":7,"funds":{}}}`), nil
		}
		return json.RawMessage(`{}`), nil
	}}
	c := New("k", "s", WithTransport(tr), WithLabel("main"))
	ex := c.AsExchange()
	ctx := context.Background()

	require.Equal(t, "btce", ex.ExchangeName())
	require.Equal(t, "main", ex.Label())

	price, err := ex.LastPrice(ctx, "ltc_usd")
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("3.1").Equal(price))

	vol, err := ex.Last24hVolume(ctx, "ltc_usd")
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("1200.5").Equal(vol))

	_, err = ex.LastPrice(ctx, "btc_usd")
	require.Error(t, err)

	balance, err := ex.SpotBalance(ctx)
	require.NoError(t, err)
	require.Len(t, balance, 2)
	require.NotContains(t, balance, "btc")

	orders, err := ex.OpenOrders(ctx, "")
	require.NoError(t, err)
	require.Empty(t, orders)

	id, err := ex.Buy(ctx, "ltc_usd", decimal.RequireFromString("3"), decimal.NewFromInt(1))
	require.NoError(t, err)
	require.Equal(t, uint64(7), id)
	require.NoError(t, ex.CancelOrder(ctx, id))

	ticker, err := c.NormalizedTicker(ctx, "ltc_usd")
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("3.11").Equal(ticker.LowestAsk))
	require.Equal(t, time.Unix(1370816308, 0), ticker.Time)
}

func TestConvertOrdersAndTrades(t *testing.T) {
	orders, err := convertOrders(map[string]Order{
		"20": {Pair: "btc_usd", Type: "buy", StartAmount: decimal.NewFromInt(2), Amount: decimal.NewFromInt(1), Status: OrderStatusActive},
		"10": {Pair: "btc_usd", Type: "sell", Status: OrderStatusCancelled},
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, uint64(10), orders[0].Id)
	require.Equal(t, "cancelled", orders[0].Status)
	require.True(t, decimal.NewFromInt(1).Equal(orders[1].FilledAmount()))

	_, err = convertOrders(map[string]Order{"abc": {}})
	require.Error(t, err)

	trades, err := ConvertTrades(map[string]HistoryTrade{
		"166831": {Pair: "btc_usd", Type: "buy", Rate: decimal.NewFromInt(450), Amount: decimal.RequireFromString("0.5"), OrderId: 2, Timestamp: 1342445800},
		"166830": {Pair: "btc_usd", Type: "sell", Rate: decimal.NewFromInt(450), Amount: decimal.NewFromInt(1), OrderId: 1, Timestamp: 1342445793},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(166830), trades[0].Id)
	require.True(t, decimal.NewFromInt(225).Equal(trades[1].Total()))

	require.Equal(t, "unknown(9)", OrderStatusName(9))
	require.Equal(t, "btc_usd", Symbol("BTC", "Usd"))
}
