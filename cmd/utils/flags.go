package utils

import (
	"github.com/urfave/cli/v2"
	"github.com/xyths/btce/btce"
	"github.com/xyths/btce/exchange"
)

var (
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "",
		Usage:   "load configuration from `file`",
	}
	KeyFlag = &cli.StringFlag{
		Name:    "key",
		Usage:   "api `key`",
		EnvVars: []string{exchange.EnvApiKey},
	}
	SecretFlag = &cli.StringFlag{
		Name:    "secret",
		Usage:   "api `secret`",
		EnvVars: []string{exchange.EnvSecretKey},
	}
	HostFlag = &cli.StringFlag{
		Name:    "host",
		Usage:   "api `host`, e.g. https://wex.nz",
		EnvVars: []string{exchange.EnvHost},
	}
	DebugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "log every request",
	}

	PairFlag = &cli.StringFlag{
		Name:    "pair",
		Aliases: []string{"p"},
		Value:   btce.DefaultPair,
		Usage:   "trading `pair`",
	}
	LimitFlag = &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"l"},
		Value:   btce.DefaultLimit,
		Usage:   "max rows returned",
	}
	RateFlag = &cli.StringFlag{
		Name:     "rate",
		Aliases:  []string{"r"},
		Usage:    "order `price`",
		Required: true,
	}
	AmountFlag = &cli.StringFlag{
		Name:     "amount",
		Aliases:  []string{"a"},
		Usage:    "order `amount`",
		Required: true,
	}
	OrderIdFlag = &cli.Uint64Flag{
		Name:     "id",
		Usage:    "order `id`",
		Required: true,
	}

	FromFlag = &cli.Int64Flag{
		Name:  "from",
		Usage: "skip the first `n` records",
	}
	CountFlag = &cli.Int64Flag{
		Name:  "count",
		Value: btce.DefaultHistoryCount,
		Usage: "number of records",
	}
	FromIdFlag = &cli.Int64Flag{
		Name:  "from-id",
		Usage: "first record `id`",
	}
	EndIdFlag = &cli.Int64Flag{
		Name:  "end-id",
		Usage: "last record `id`",
	}
	SortFlag = &cli.StringFlag{
		Name:  "order",
		Value: btce.SortDesc,
		Usage: "ASC or DESC",
	}
	StartTimeFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Value:   "",
		Usage:   "start `time`",
	}
	EndTimeFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Value:   "",
		Usage:   "end `time`",
	}
	CsvFlag = &cli.StringFlag{
		Name:  "csv",
		Value: "trades.csv",
		Usage: "output csv `file`",
	}
)
