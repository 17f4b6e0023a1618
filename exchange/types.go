package exchange

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	Id            uint64
	Symbol        string
	Type          string // buy or sell
	Status        string
	Price         decimal.Decimal // 下单价格
	InitialAmount decimal.Decimal // 下单数量
	Amount        decimal.Decimal // 剩余数量
	Time          time.Time
}

// FilledAmount is the part of the order already executed.
func (o Order) FilledAmount() decimal.Decimal {
	if o.InitialAmount.IsZero() {
		return decimal.Zero
	}
	return o.InitialAmount.Sub(o.Amount)
}

type Ticker struct {
	Symbol      string
	Last        decimal.Decimal // 最新成交价
	LowestAsk   decimal.Decimal // 卖1，卖方最低价
	HighestBid  decimal.Decimal // 买1，买方最高价
	BaseVolume  decimal.Decimal // 交易量
	QuoteVolume decimal.Decimal // 兑换货币交易量
	High24hr    decimal.Decimal
	Low24hr     decimal.Decimal
	Time        time.Time
}

type Trade struct {
	Id      uint64
	OrderId uint64
	Symbol  string
	Type    string
	Price   decimal.Decimal
	Amount  decimal.Decimal
	Time    time.Time
}

// Total is price * amount, in quote currency.
func (t Trade) Total() decimal.Decimal {
	return t.Price.Mul(t.Amount)
}

type Balance struct {
	Time     time.Time
	Exchange string
	Label    string
	Currency string
	Amount   decimal.Decimal
}
