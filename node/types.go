package node

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/xyths/btce/exchange"
)

// for mongo
type Trade struct {
	Id       uint64    `bson:"_id"`
	OrderId  uint64    `bson:"orderId"`
	Label    string    `bson:"label"`
	Pair     string    `bson:"pair"`
	Type     string    `bson:"type"`
	Rate     string    `bson:"rate"`
	Amount   string    `bson:"amount"`
	Total    string    `bson:"total"`
	Date     time.Time `bson:"date"`
	TimeUnix int64     `bson:"timeUnix"`
}

func newTrade(label string, t exchange.Trade) Trade {
	return Trade{
		Id:       t.Id,
		OrderId:  t.OrderId,
		Label:    label,
		Pair:     t.Symbol,
		Type:     t.Type,
		Rate:     t.Price.String(),
		Amount:   t.Amount.String(),
		Total:    t.Total().String(),
		Date:     t.Time,
		TimeUnix: t.Time.Unix(),
	}
}

// Asset is one row of an account snapshot, for mysql.
type Asset struct {
	ID       uint            `gorm:"primary_key"`
	Exchange string          `gorm:"size:32;index"`
	Label    string          `gorm:"size:64;index"`
	Currency string          `gorm:"size:16"`
	Amount   decimal.Decimal `sql:"type:decimal(36,18)"`
	Price    decimal.Decimal `sql:"type:decimal(36,18)"`
	Value    decimal.Decimal `sql:"type:decimal(36,18)"`
	Time     time.Time       `gorm:"index"`
}
