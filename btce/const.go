package btce

import "time"

const (
	DefaultHost        = "https://btc-e.nz"
	DefaultPublicPath  = "/api/3"
	DefaultPrivatePath = "/tapi"

	DefaultTimeout = 30 * time.Second
)

const (
	DefaultPair  = BTC_USD
	DefaultLimit = 150

	DefaultHistoryCount = 1000
)

// nonce = round(unix_ms / nonceTickMs) - nonceOffset
const (
	nonceTickMs = 100
	nonceOffset = 12000000000
)

const (
	BTC_USD = "btc_usd"
	BTC_EUR = "btc_eur"
	BTC_RUR = "btc_rur"
	LTC_BTC = "ltc_btc"
	LTC_USD = "ltc_usd"
	ETH_BTC = "eth_btc"
	ETH_USD = "eth_usd"
	DSH_BTC = "dsh_btc"
)

// used by Trade
const (
	OrderTypeBuy  = "buy"
	OrderTypeSell = "sell"
)

// used by TradeHistory and TransHistory
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// order status in ActiveOrders/OrderInfo
const (
	OrderStatusActive          = 0
	OrderStatusExecuted        = 1
	OrderStatusCancelled       = 2
	OrderStatusPartlyCancelled = 3
)

// API method names sent in the "method" parameter of private calls
const (
	methodGetInfo      = "getInfo"
	methodTrade        = "Trade"
	methodActiveOrders = "ActiveOrders"
	methodOrderInfo    = "OrderInfo"
	methodCancelOrder  = "CancelOrder"
	methodTradeHistory = "TradeHistory"
	methodTransHistory = "TransHistory"
)

const (
	headerKey         = "Key"
	headerSign        = "Sign"
	headerContentType = "Content-Type"
	contentTypeForm   = "application/x-www-form-urlencoded"
)
