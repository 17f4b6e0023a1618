package node

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/xyths/btce/exchange"
	"github.com/xyths/btce/logger"
)

type MongoConf struct {
	URI         string `json:"uri"`
	Database    string `json:"database"`
	MaxPoolSize uint64 `json:"maxPoolSize"`
	MinPoolSize uint64 `json:"minPoolSize"`
	AppName     string `json:"appName"`
}

type MySQLConf struct {
	URI string `json:"uri"`
}

type History struct {
	Prefix   string `json:"prefix"` // collection name is Prefix + account label
	Interval string `json:"interval"`
	Pair     string `json:"pair"` // empty means all pairs
}

type Snapshot struct {
	Quote string `json:"quote"` // currency the assets are valued in, default usd
}

type Config struct {
	Exchange exchange.APIKeyPair `json:"exchange"`
	Timeout  string              `json:"timeout"`
	Mongo    MongoConf           `json:"mongo"`
	MySQL    MySQLConf           `json:"mysql"`
	History  History             `json:"history"`
	Snapshot Snapshot            `json:"snapshot"`
	Log      logger.LogConf      `json:"log"`
}

const (
	defaultInterval = "1m"
	defaultPrefix   = "trades_"
	defaultQuote    = "usd"
)

// ParseConfig reads a JSON config file. Credentials missing from the file are taken from the environment.
func ParseConfig(filename string) (c Config, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return c, err
	}
	defer func() {
		_ = f.Close()
	}()
	if err = json.NewDecoder(f).Decode(&c); err != nil {
		return c, errors.Wrapf(err, "decode %s", filename)
	}
	c.Exchange = c.Exchange.FromEnv()
	c.setDefaults()
	return c, nil
}

func (c *Config) setDefaults() {
	if c.History.Interval == "" {
		c.History.Interval = defaultInterval
	}
	if c.History.Prefix == "" {
		c.History.Prefix = defaultPrefix
	}
	if c.Snapshot.Quote == "" {
		c.Snapshot.Quote = defaultQuote
	}
	if c.Exchange.Label == "" {
		c.Exchange.Label = "default"
	}
}

func (c Config) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Timeout)
}
