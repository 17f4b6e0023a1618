package btce

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// from api result

/*
{
    "server_time":1370814956,
    "pairs":{
        "btc_usd":{
            "decimal_places":3,
            "min_price":0.1,
            "max_price":400,
            "min_amount":0.01,
            "hidden":0,
            "fee":0.2
        }
    }
}
*/
type Info struct {
	ServerTime int64               `json:"server_time"`
	Pairs      map[string]PairInfo `json:"pairs"`
}

type PairInfo struct {
	DecimalPlaces int32           `json:"decimal_places"`
	MinPrice      decimal.Decimal `json:"min_price"`
	MaxPrice      decimal.Decimal `json:"max_price"`
	MinAmount     decimal.Decimal `json:"min_amount"`
	Hidden        int             `json:"hidden"`
	Fee           decimal.Decimal `json:"fee"` // percent
}

type Ticker struct {
	High    decimal.Decimal `json:"high"`
	Low     decimal.Decimal `json:"low"`
	Avg     decimal.Decimal `json:"avg"`
	Vol     decimal.Decimal `json:"vol"`     // volume in quote currency
	VolCur  decimal.Decimal `json:"vol_cur"` // volume in base currency
	Last    decimal.Decimal `json:"last"`
	Buy     decimal.Decimal `json:"buy"`
	Sell    decimal.Decimal `json:"sell"`
	Updated int64           `json:"updated"`
}

// PriceLevel is one [price, amount] row of the order book.
type PriceLevel struct {
	Price  decimal.Decimal
	Amount decimal.Decimal
}

func (l *PriceLevel) UnmarshalJSON(data []byte) error {
	var raw [2]decimal.Decimal
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Price, l.Amount = raw[0], raw[1]
	return nil
}

type Depth struct {
	Asks []PriceLevel `json:"asks"`
	Bids []PriceLevel `json:"bids"`
}

type PublicTrade struct {
	Type      string          `json:"type"` // ask or bid
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Tid       uint64          `json:"tid"`
	Timestamp int64           `json:"timestamp"`
}

type Rights struct {
	Info     int `json:"info"`
	Trade    int `json:"trade"`
	Withdraw int `json:"withdraw"`
}

type AccountInfo struct {
	Funds            map[string]decimal.Decimal `json:"funds"`
	Rights           Rights                     `json:"rights"`
	TransactionCount int64                      `json:"transaction_count"`
	OpenOrders       int64                      `json:"open_orders"`
	ServerTime       int64                      `json:"server_time"`
}

type TradeResult struct {
	Received decimal.Decimal            `json:"received"`
	Remains  decimal.Decimal            `json:"remains"`
	OrderId  uint64                     `json:"order_id"` // 0 when the order was filled immediately
	Funds    map[string]decimal.Decimal `json:"funds"`
}

// Order is an entry of ActiveOrders and OrderInfo. StartAmount is only set by OrderInfo.
type Order struct {
	Pair             string          `json:"pair"`
	Type             string          `json:"type"`
	StartAmount      decimal.Decimal `json:"start_amount"`
	Amount           decimal.Decimal `json:"amount"` // remaining
	Rate             decimal.Decimal `json:"rate"`
	TimestampCreated int64           `json:"timestamp_created"`
	Status           int             `json:"status"`
}

func (o Order) Created() time.Time {
	return time.Unix(o.TimestampCreated, 0)
}

type CancelResult struct {
	OrderId uint64                     `json:"order_id"`
	Funds   map[string]decimal.Decimal `json:"funds"`
}

type HistoryTrade struct {
	Pair        string          `json:"pair"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Rate        decimal.Decimal `json:"rate"`
	OrderId     uint64          `json:"order_id"`
	IsYourOrder int             `json:"is_your_order"`
	Timestamp   int64           `json:"timestamp"`
}

type Transaction struct {
	Type      int             `json:"type"` // 1 deposit, 2 withdrawal, 4/5 credit
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Desc      string          `json:"desc"`
	Status    int             `json:"status"`
	Timestamp int64           `json:"timestamp"`
}

// HistoryParams selects a page of TradeHistory or TransHistory.
// Zero EndId, End and empty Pair are not sent. Pair is ignored by TransHistory.
type HistoryParams struct {
	From   int64
	Count  int64
	FromId int64
	EndId  int64
	Order  string
	Since  int64 // unix seconds
	End    int64 // unix seconds
	Pair   string
}

func DefaultHistoryParams() HistoryParams {
	return HistoryParams{
		From:   0,
		Count:  DefaultHistoryCount,
		FromId: 0,
		Order:  SortDesc,
		Since:  0,
	}
}

// responses

// privateResponse is the envelope of every /tapi answer.
type privateResponse struct {
	Success int             `json:"success"`
	Return  json.RawMessage `json:"return"`
	Error   string          `json:"error"`
}

// publicStatus holds the fields that mark a public answer as a failure.
type publicStatus struct {
	Status       json.RawMessage `json:"status"`
	Description  string          `json:"description"`
	ErrorMessage string          `json:"error_message"`
	Success      *int            `json:"success"`
	Error        string          `json:"error"`
}
