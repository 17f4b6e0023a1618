package exchange

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

type Exchange interface {
	ExchangeName() string
	Label() string
	LastPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	Last24hVolume(ctx context.Context, symbol string) (decimal.Decimal, error)
	SpotBalance(ctx context.Context) (map[string]decimal.Decimal, error)
	OpenOrders(ctx context.Context, symbol string) ([]Order, error)
	Sell(ctx context.Context, symbol string, price, amount decimal.Decimal) (orderId uint64, err error)
	Buy(ctx context.Context, symbol string, price, amount decimal.Decimal) (orderId uint64, err error)
	CancelOrder(ctx context.Context, orderId uint64) error
}

type volume struct {
	Symbol string
	Vol    decimal.Decimal
}
type symbolVolume []volume

func (sv symbolVolume) Len() int {
	return len(sv)
}
func (sv symbolVolume) Swap(i, j int) {
	sv[i], sv[j] = sv[j], sv[i]
}
func (sv symbolVolume) Less(i, j int) bool {
	return sv[i].Vol.LessThan(sv[j].Vol)
}

// sort symbols by 24h trade volume, descending. Symbols without volume are dropped.
func SortByVolume(ctx context.Context, ex Exchange, symbols []string) ([]string, error) {
	var vols symbolVolume
	for _, s := range symbols {
		vol, err := ex.Last24hVolume(ctx, s)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if !vol.IsPositive() {
			continue
		}
		vols = append(vols, volume{Symbol: s, Vol: vol})
	}
	sort.Stable(sort.Reverse(vols))
	ret := make([]string, len(vols))
	for i := 0; i < len(vols); i++ {
		ret[i] = vols[i].Symbol
	}
	return ret, nil
}
