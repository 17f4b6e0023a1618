package node

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var csvHeader = []string{"account", "time", "pair", "type", "price", "amount", "total", "tradeId", "orderId"}

// Export writes the archived trades between start and end into csvfile, oldest first.
// A zero start or end leaves that side of the range open.
func (n *Node) Export(ctx context.Context, start, end time.Time, csvfile string) error {
	if n.mg == nil {
		return errors.New("export needs mongo")
	}
	trades, err := n.getTrades(ctx, start, end)
	if err != nil {
		return err
	}
	f, err := os.Create(csvfile)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	if err := writeCSV(f, trades); err != nil {
		return err
	}
	n.Sugar.Infof("exported %d trades to %s", len(trades), csvfile)
	return nil
}

func (n *Node) getTrades(ctx context.Context, start, end time.Time) (trades []Trade, err error) {
	coll := n.mg.Collection(n.config.History.Prefix + n.config.Exchange.Label)
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := coll.Find(ctx, dateFilter(start, end), opts)
	if err != nil {
		return
	}
	err = cursor.All(ctx, &trades)
	return
}

func dateFilter(start, end time.Time) bson.D {
	var cond bson.D
	if !start.IsZero() {
		cond = append(cond, bson.E{Key: "$gte", Value: start})
	}
	if !end.IsZero() {
		cond = append(cond, bson.E{Key: "$lte", Value: end})
	}
	if len(cond) == 0 {
		return bson.D{}
	}
	return bson.D{{Key: "date", Value: cond}}
}

func writeCSV(out io.Writer, trades []Trade) error {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, t := range trades {
		record := []string{
			t.Label,
			t.Date.Format("2006-01-02 15:04:05"),
			t.Pair,
			t.Type,
			t.Rate,
			t.Amount,
			t.Total,
			strconv.FormatUint(t.Id, 10),
			strconv.FormatUint(t.OrderId, 10),
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "write trade %d", t.Id)
		}
	}
	w.Flush()
	return w.Error()
}
