package utils

import (
	"github.com/urfave/cli/v2"
	"github.com/xyths/btce/btce"
	"github.com/xyths/btce/exchange"
	"github.com/xyths/btce/logger"
	"github.com/xyths/btce/node"
)

// loadConfig reads the config file when one is given, then lets the command line
// flags override the account settings.
func loadConfig(ctx *cli.Context) (node.Config, error) {
	var c node.Config
	if filename := ctx.String(ConfigFlag.Name); filename != "" {
		var err error
		if c, err = node.ParseConfig(filename); err != nil {
			return c, err
		}
	} else {
		c.Exchange = exchange.APIKeyPair{}.FromEnv()
	}
	if v := ctx.String(KeyFlag.Name); v != "" {
		c.Exchange.ApiKey = v
	}
	if v := ctx.String(SecretFlag.Name); v != "" {
		c.Exchange.SecretKey = v
	}
	if v := ctx.String(HostFlag.Name); v != "" {
		c.Exchange.Host = v
	}
	if ctx.Bool(DebugFlag.Name) {
		c.Log.Level = "debug"
	}
	return c, nil
}

// GetClient builds a client for one-shot commands. Private calls fail with
// btce.ErrNoCredentials when no key is configured.
func GetClient(ctx *cli.Context) (*btce.Client, error) {
	c, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(c.Log); err != nil {
		return nil, err
	}
	return btce.New(c.Exchange.ApiKey, c.Exchange.SecretKey,
		btce.WithHost(c.Exchange.Host),
		btce.WithLabel(c.Exchange.Label),
		btce.WithLogger(logger.Sugar),
	), nil
}

// GetNode builds and connects a node; the caller closes it.
func GetNode(ctx *cli.Context) (*node.Node, error) {
	c, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Exchange.Validate(); err != nil {
		return nil, err
	}
	n, err := node.New(c)
	if err != nil {
		return nil, err
	}
	if err := n.Init(ctx.Context); err != nil {
		n.Close(ctx.Context)
		return nil, err
	}
	return n, nil
}
