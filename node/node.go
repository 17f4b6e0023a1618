// Package node runs the long lived jobs of one exchange account: pulling the
// trade history into mongo and snapshotting the balance into mysql.
package node

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xyths/btce/btce"
	"github.com/xyths/btce/exchange"
	"github.com/xyths/btce/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Node struct {
	config Config
	client *btce.Client
	ex     exchange.Exchange

	mgClient *mongo.Client
	mg       *mongo.Database
	gormDB   *gorm.DB

	lastTradeId uint64

	Sugar *zap.SugaredLogger
}

// New builds the logger and the exchange client. Databases are connected by Init.
func New(cfg Config) (*Node, error) {
	l, err := logger.NewZapLogger(cfg.Log)
	if err != nil {
		return nil, errors.Wrap(err, "init logger")
	}
	timeout, err := cfg.timeout()
	if err != nil {
		return nil, errors.Wrapf(err, "parse timeout %q", cfg.Timeout)
	}
	n := &Node{
		config: cfg,
		Sugar:  l.Sugar(),
	}
	opts := []btce.Option{
		btce.WithHost(cfg.Exchange.Host),
		btce.WithLabel(cfg.Exchange.Label),
		btce.WithLogger(n.Sugar),
	}
	if timeout > 0 {
		opts = append(opts, btce.WithTimeout(timeout))
	}
	n.client = btce.New(cfg.Exchange.ApiKey, cfg.Exchange.SecretKey, opts...)
	n.ex = n.client.AsExchange()
	return n, nil
}

func (n *Node) Client() *btce.Client {
	return n.client
}

// Init connects the databases named in the config. An empty URI leaves that database off.
func (n *Node) Init(ctx context.Context) error {
	if n.config.Mongo.URI != "" {
		if err := n.initMongo(ctx); err != nil {
			return err
		}
	}
	if n.config.MySQL.URI != "" {
		if err := n.initMySQL(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) initMongo(ctx context.Context) error {
	conf := n.config.Mongo
	clientOpts := options.Client().ApplyURI(conf.URI)
	if conf.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(conf.MaxPoolSize)
	}
	if conf.MinPoolSize > 0 {
		clientOpts.SetMinPoolSize(conf.MinPoolSize)
	}
	if conf.AppName != "" {
		clientOpts.SetAppName(conf.AppName)
	}
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return errors.Wrap(err, "connect to mongo")
	}
	// Check the connection
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return errors.Wrap(err, "ping mongo")
	}
	n.mgClient = client
	n.mg = client.Database(conf.Database)
	n.Sugar.Infow("mongo connected", "database", conf.Database)
	return nil
}

func (n *Node) initMySQL() error {
	db, err := gorm.Open("mysql", n.config.MySQL.URI)
	if err != nil {
		return errors.Wrap(err, "connect to mysql")
	}
	n.gormDB = db
	n.Sugar.Info("mysql connected")
	return nil
}

func (n *Node) Close(ctx context.Context) {
	if n.gormDB != nil {
		if err := n.gormDB.Close(); err != nil {
			n.Sugar.Errorf("error when gorm close: %s", err)
		}
	}
	if n.mgClient != nil {
		if err := n.mgClient.Disconnect(ctx); err != nil {
			n.Sugar.Errorf("error when mongo disconnect: %s", err)
		}
	}
	_ = n.Sugar.Sync()
}

// PullHistory copies the account's trades into mongo every History.Interval until ctx is done.
func (n *Node) PullHistory(ctx context.Context) error {
	if n.mg == nil {
		return errors.New("pull history needs mongo")
	}
	d, err := time.ParseDuration(n.config.History.Interval)
	if err != nil {
		return errors.Wrapf(err, "parse interval %q", n.config.History.Interval)
	}

	if err := n.getHistoryOnce(ctx); err != nil {
		n.Sugar.Errorf("error when getHistory: %s", err)
	}
	for {
		select {
		case <-ctx.Done():
			n.Sugar.Info(ctx.Err())
			return nil
		case <-time.After(d):
			if err := n.getHistoryOnce(ctx); err != nil {
				n.Sugar.Errorf("error when getHistory: %s", err)
			}
		}
	}
}

func (n *Node) historyParams() btce.HistoryParams {
	p := btce.DefaultHistoryParams()
	p.Pair = n.config.History.Pair
	if n.lastTradeId > 0 {
		p.FromId = int64(n.lastTradeId) + 1
		p.Order = btce.SortAsc
	}
	return p
}

func (n *Node) getHistoryOnce(ctx context.Context) error {
	label := n.config.Exchange.Label
	n.Sugar.Infof("get history for %s-%s start now", btce.Name, label)

	raw, err := n.client.TradeHistory(ctx, n.historyParams())
	if err != nil {
		if isNoTrades(err) {
			n.Sugar.Debug("no new trades")
			return nil
		}
		return err
	}
	trades, err := btce.ConvertTrades(raw)
	if err != nil {
		return err
	}

	coll := n.mg.Collection(n.config.History.Prefix + label)
	st := saveTrades(ctx, coll, label, trades, n.Sugar)
	if len(trades) > 0 && trades[len(trades)-1].Id > n.lastTradeId {
		n.lastTradeId = trades[len(trades)-1].Id
	}

	n.Sugar.Infof("get history for %s-%s finish now, all: %d, success: %d, duplicate: %d, fail: %d",
		btce.Name, label, st.all, st.success, st.duplicate, st.fail)
	return nil
}

type inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type saveStat struct {
	all, success, duplicate, fail int
}

func saveTrades(ctx context.Context, coll inserter, label string, trades []exchange.Trade, sugar *zap.SugaredLogger) (st saveStat) {
	st.all = len(trades)
	for _, t := range trades {
		if _, err := coll.InsertOne(ctx, newTrade(label, t)); err != nil {
			if isDuplicateError(err) {
				st.duplicate++
			} else {
				sugar.Errorf("Error when insert to mongo: %s", err)
				st.fail++
			}
		} else {
			st.success++
		}
	}
	return
}

func isDuplicateError(err error) bool {
	e, ok := errors.Cause(err).(mongo.WriteException)
	if !ok {
		return false
	}
	if e.WriteConcernError == nil && len(e.WriteErrors) == 1 && e.WriteErrors[0].Code == 11000 {
		return true
	}
	return false
}

func isNoTrades(err error) bool {
	e, ok := errors.Cause(err).(*btce.APIError)
	return ok && strings.EqualFold(e.Message, "no trades")
}

// Snapshot values every non-zero balance in the configured quote currency and
// stores the rows into mysql, or only logs them when mysql is off.
func (n *Node) Snapshot(ctx context.Context) ([]Asset, error) {
	assets, err := valuate(ctx, n.ex, n.config.Snapshot.Quote, time.Now(), n.Sugar)
	if err != nil {
		return nil, err
	}
	for _, a := range assets {
		n.Sugar.Infow("asset", "currency", a.Currency, "amount", a.Amount, "price", a.Price, "value", a.Value)
	}
	if n.gormDB == nil {
		return assets, nil
	}
	if err := n.gormDB.AutoMigrate(&Asset{}).Error; err != nil {
		return assets, errors.Wrap(err, "migrate assets table")
	}
	for i := range assets {
		if err := n.gormDB.Create(&assets[i]).Error; err != nil {
			return assets, errors.Wrapf(err, "save %s", assets[i].Currency)
		}
	}
	return assets, nil
}

// valuate turns the spot balance of ex into assets priced in quote. A coin
// without a quote market keeps a zero price.
func valuate(ctx context.Context, ex exchange.Exchange, quote string, now time.Time, sugar *zap.SugaredLogger) ([]Asset, error) {
	balance, err := ex.SpotBalance(ctx)
	if err != nil {
		return nil, err
	}
	quote = strings.ToLower(quote)
	assets := make([]Asset, 0, len(balance))
	for coin, amount := range balance {
		a := Asset{
			Exchange: ex.ExchangeName(),
			Label:    ex.Label(),
			Currency: strings.ToUpper(coin),
			Amount:   amount,
			Time:     now,
		}
		if strings.ToLower(coin) == quote {
			a.Price = decimal.NewFromInt(1)
			a.Value = amount
		} else {
			symbol := btce.Symbol(coin, quote)
			price, err := ex.LastPrice(ctx, symbol)
			if err != nil {
				sugar.Debugf("no price for %s: %s", symbol, err)
			} else {
				a.Price = price
				a.Value = price.Mul(amount)
			}
		}
		assets = append(assets, a)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].Currency < assets[j].Currency })
	return assets, nil
}
