package node

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xyths/btce/btce"
	"github.com/xyths/btce/exchange"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type fakeColl struct {
	seen map[uint64]bool
}

func (c *fakeColl) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	t := document.(Trade)
	if t.Pair == "bad_pair" {
		return nil, errors.New("connection reset")
	}
	if c.seen[t.Id] {
		return nil, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key"}}}
	}
	c.seen[t.Id] = true
	return &mongo.InsertOneResult{InsertedID: t.Id}, nil
}

func TestSaveTrades(t *testing.T) {
	coll := &fakeColl{seen: map[uint64]bool{2: true}}
	trades := []exchange.Trade{
		{Id: 1, Symbol: "btc_usd", Price: decimal.NewFromInt(450), Amount: decimal.NewFromInt(2)},
		{Id: 2, Symbol: "btc_usd"},
		{Id: 3, Symbol: "bad_pair"},
	}
	st := saveTrades(context.Background(), coll, "main", trades, zap.NewNop().Sugar())
	require.Equal(t, saveStat{all: 3, success: 1, duplicate: 1, fail: 1}, st)
}

func TestNewTrade(t *testing.T) {
	ts := time.Unix(1342445793, 0)
	tr := newTrade("main", exchange.Trade{
		Id: 166830, OrderId: 343148, Symbol: "btc_usd", Type: "sell",
		Price: decimal.RequireFromString("0.1"), Amount: decimal.NewFromInt(1), Time: ts,
	})
	require.Equal(t, uint64(166830), tr.Id)
	require.Equal(t, "main", tr.Label)
	require.Equal(t, "0.1", tr.Total)
	require.Equal(t, int64(1342445793), tr.TimeUnix)
}

func TestIsDuplicateError(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	require.True(t, isDuplicateError(dup))
	require.True(t, isDuplicateError(errors.Wrap(dup, "insert")))
	require.False(t, isDuplicateError(mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121}}}))
	require.False(t, isDuplicateError(errors.New("other")))
}

func TestIsNoTrades(t *testing.T) {
	require.True(t, isNoTrades(&btce.APIError{Method: "TradeHistory", Message: "no trades"}))
	require.False(t, isNoTrades(&btce.APIError{Method: "TradeHistory", Message: "invalid nonce"}))
	require.False(t, isNoTrades(errors.New("no trades")))
}

type fakeExchange struct {
	exchange.Exchange
	balance map[string]decimal.Decimal
	prices  map[string]decimal.Decimal
}

func (e fakeExchange) ExchangeName() string { return "btce" }
func (e fakeExchange) Label() string        { return "main" }

func (e fakeExchange) SpotBalance(context.Context) (map[string]decimal.Decimal, error) {
	return e.balance, nil
}

func (e fakeExchange) LastPrice(_ context.Context, symbol string) (decimal.Decimal, error) {
	p, ok := e.prices[symbol]
	if !ok {
		return decimal.Zero, errors.New("invalid pair")
	}
	return p, nil
}

func TestValuate(t *testing.T) {
	ex := fakeExchange{
		balance: map[string]decimal.Decimal{
			"usd": decimal.NewFromInt(325),
			"btc": decimal.RequireFromString("0.5"),
			"xyz": decimal.NewFromInt(7),
		},
		prices: map[string]decimal.Decimal{"btc_usd": decimal.NewFromInt(600)},
	}
	now := time.Now()
	assets, err := valuate(context.Background(), ex, "USD", now, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.Len(t, assets, 3)

	require.Equal(t, "BTC", assets[0].Currency)
	require.True(t, decimal.NewFromInt(300).Equal(assets[0].Value))
	require.Equal(t, "main", assets[0].Label)

	require.Equal(t, "USD", assets[1].Currency)
	require.True(t, decimal.NewFromInt(325).Equal(assets[1].Value))

	require.Equal(t, "XYZ", assets[2].Currency)
	require.True(t, assets[2].Value.IsZero())
	require.Equal(t, now, assets[2].Time)
}

func TestParseConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "btce-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "config.json")
	require.NoError(t, ioutil.WriteFile(name, []byte(`{
  "exchange": {"label": "main", "apiKey": "k", "secretKey": "s"},
  "timeout": "10s",
  "history": {"pair": "btc_usd"}
}`), 0600))

	c, err := ParseConfig(name)
	require.NoError(t, err)
	require.Equal(t, "main", c.Exchange.Label)
	require.Equal(t, "btc_usd", c.History.Pair)
	require.Equal(t, defaultInterval, c.History.Interval)
	require.Equal(t, defaultPrefix, c.History.Prefix)
	require.Equal(t, defaultQuote, c.Snapshot.Quote)
	d, err := c.timeout()
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, d)

	_, err = ParseConfig(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestNode_HistoryParams(t *testing.T) {
	n, err := New(Config{History: History{Pair: "ltc_usd"}})
	require.NoError(t, err)
	require.NotNil(t, n.Client())

	p := n.historyParams()
	require.Equal(t, "ltc_usd", p.Pair)
	require.Equal(t, btce.SortDesc, p.Order)
	require.Zero(t, p.FromId)

	n.lastTradeId = 100
	p = n.historyParams()
	require.Equal(t, int64(101), p.FromId)
	require.Equal(t, btce.SortAsc, p.Order)

	require.Error(t, n.PullHistory(context.Background()))
}
