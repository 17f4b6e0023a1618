package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"github.com/xyths/btce/btce"
	"github.com/xyths/btce/cmd/utils"
)

var (
	infoCommand = &cli.Command{
		Action: info,
		Name:   "info",
		Usage:  "Show server time and pair limits",
	}
	tickerCommand = &cli.Command{
		Action: ticker,
		Name:   "ticker",
		Usage:  "Show the 24h ticker of a pair",
		Flags:  []cli.Flag{utils.PairFlag},
	}
	depthCommand = &cli.Command{
		Action: depth,
		Name:   "depth",
		Usage:  "Show the order book of a pair",
		Flags:  []cli.Flag{utils.PairFlag, utils.LimitFlag},
	}
	tradesCommand = &cli.Command{
		Action: trades,
		Name:   "trades",
		Usage:  "Show the latest public trades of a pair",
		Flags:  []cli.Flag{utils.PairFlag, utils.LimitFlag},
	}
	accountCommand = &cli.Command{
		Action: account,
		Name:   "account",
		Usage:  "Show balances and key rights",
	}
	buyCommand = &cli.Command{
		Action: buy,
		Name:   "buy",
		Usage:  "Place a limit buy order",
		Flags:  []cli.Flag{utils.PairFlag, utils.RateFlag, utils.AmountFlag},
	}
	sellCommand = &cli.Command{
		Action: sell,
		Name:   "sell",
		Usage:  "Place a limit sell order",
		Flags:  []cli.Flag{utils.PairFlag, utils.RateFlag, utils.AmountFlag},
	}
	ordersCommand = &cli.Command{
		Action: orders,
		Name:   "orders",
		Usage:  "List open orders, of all pairs unless --pair is given",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: utils.PairFlag.Name, Aliases: utils.PairFlag.Aliases, Usage: utils.PairFlag.Usage},
		},
	}
	orderCommand = &cli.Command{
		Action: order,
		Name:   "order",
		Usage:  "Show one order",
		Flags:  []cli.Flag{utils.OrderIdFlag},
	}
	cancelCommand = &cli.Command{
		Action: cancelOrder,
		Name:   "cancel",
		Usage:  "Cancel an order",
		Flags:  []cli.Flag{utils.OrderIdFlag},
	}
	historyFlags = []cli.Flag{
		utils.FromFlag,
		utils.CountFlag,
		utils.FromIdFlag,
		utils.EndIdFlag,
		utils.SortFlag,
		utils.StartTimeFlag,
		utils.EndTimeFlag,
	}
	historyCommand = &cli.Command{
		Name:  "history",
		Usage: "Manage trading history",
		Subcommands: []*cli.Command{
			{
				Action: tradeHistory,
				Name:   "trades",
				Usage:  "Show the account's trades",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: utils.PairFlag.Name, Aliases: utils.PairFlag.Aliases, Usage: utils.PairFlag.Usage},
				}, historyFlags...),
			},
			{
				Action: transHistory,
				Name:   "trans",
				Usage:  "Show deposits, withdrawals and other balance changes",
				Flags:  historyFlags,
			},
			{
				Action: pull,
				Name:   "pull",
				Usage:  "Pull trading history into mongo until interrupted",
			},
			{
				Action: export,
				Name:   "export",
				Usage:  "Export pulled trading history to csv",
				Flags: []cli.Flag{
					utils.StartTimeFlag,
					utils.EndTimeFlag,
					utils.CsvFlag,
				},
			},
		},
	}
	snapshotCommand = &cli.Command{
		Action: snapshot,
		Name:   "snapshot",
		Usage:  "Snapshot the asset",
	}
)

func info(ctx *cli.Context) error {
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	res, err := c.Info(ctx.Context)
	if err != nil {
		return err
	}
	return printJSON(res)
}

func ticker(ctx *cli.Context) error {
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	res, err := c.Ticker(ctx.Context, ctx.String(utils.PairFlag.Name))
	if err != nil {
		return err
	}
	return printJSON(res)
}

func depth(ctx *cli.Context) error {
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	res, err := c.Depth(ctx.Context, ctx.String(utils.PairFlag.Name), ctx.Int(utils.LimitFlag.Name))
	if err != nil {
		return err
	}
	return printJSON(res)
}

func trades(ctx *cli.Context) error {
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	res, err := c.Trades(ctx.Context, ctx.String(utils.PairFlag.Name), ctx.Int(utils.LimitFlag.Name))
	if err != nil {
		return err
	}
	return printJSON(res)
}

func account(ctx *cli.Context) error {
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	res, err := c.GetAccountInfo(ctx.Context)
	if err != nil {
		return err
	}
	return printJSON(res)
}

func buy(ctx *cli.Context) error {
	return trade(ctx, btce.OrderTypeBuy)
}

func sell(ctx *cli.Context) error {
	return trade(ctx, btce.OrderTypeSell)
}

func trade(ctx *cli.Context, side string) error {
	rate, err := decimal.NewFromString(ctx.String(utils.RateFlag.Name))
	if err != nil {
		return errors.Wrap(err, "bad rate")
	}
	amount, err := decimal.NewFromString(ctx.String(utils.AmountFlag.Name))
	if err != nil {
		return errors.Wrap(err, "bad amount")
	}
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	pair := ctx.String(utils.PairFlag.Name)
	res, err := c.Trade(ctx.Context, pair, side, rate, amount)
	if err != nil {
		return err
	}
	label := aurora.Bold(aurora.Green("BUY"))
	if side == btce.OrderTypeSell {
		label = aurora.Bold(aurora.Red("SELL"))
	}
	fmt.Printf("%s %s %s @ %s, order %d, received %s, remains %s\n",
		label, amount, pair, rate, res.OrderId, res.Received, res.Remains)
	return nil
}

func orders(ctx *cli.Context) error {
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	list, err := c.AsExchange().OpenOrders(ctx.Context, ctx.String(utils.PairFlag.Name))
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no orders")
		return nil
	}
	for _, o := range list {
		side := aurora.Green(o.Type)
		if o.Type == btce.OrderTypeSell {
			side = aurora.Red(o.Type)
		}
		fmt.Printf("%d\t%s\t%s\t%s @ %s\t%s\t%s\n",
			o.Id, o.Symbol, side, o.Amount, o.Price, o.Status, o.Time.Format(utils.TimeLayout))
	}
	return nil
}

func order(ctx *cli.Context) error {
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	res, err := c.OrderInfo(ctx.Context, ctx.Uint64(utils.OrderIdFlag.Name))
	if err != nil {
		return err
	}
	return printJSON(res)
}

func cancelOrder(ctx *cli.Context) error {
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	res, err := c.CancelOrder(ctx.Context, ctx.Uint64(utils.OrderIdFlag.Name))
	if err != nil {
		return err
	}
	fmt.Printf("order %d %s\n", res.OrderId, aurora.Yellow("cancelled"))
	return nil
}

func historyParams(ctx *cli.Context) (btce.HistoryParams, error) {
	start, end, err := utils.ParseStartEndTime(ctx.String(utils.StartTimeFlag.Name), ctx.String(utils.EndTimeFlag.Name))
	if err != nil {
		return btce.HistoryParams{}, err
	}
	return btce.HistoryParams{
		From:   ctx.Int64(utils.FromFlag.Name),
		Count:  ctx.Int64(utils.CountFlag.Name),
		FromId: ctx.Int64(utils.FromIdFlag.Name),
		EndId:  ctx.Int64(utils.EndIdFlag.Name),
		Order:  ctx.String(utils.SortFlag.Name),
		Since:  utils.Unix(start),
		End:    utils.Unix(end),
		Pair:   ctx.String(utils.PairFlag.Name),
	}, nil
}

func tradeHistory(ctx *cli.Context) error {
	p, err := historyParams(ctx)
	if err != nil {
		return err
	}
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	raw, err := c.TradeHistory(ctx.Context, p)
	if err != nil {
		return err
	}
	list, err := btce.ConvertTrades(raw)
	if err != nil {
		return err
	}
	for _, t := range list {
		fmt.Printf("%d\t%d\t%s\t%s\t%s @ %s\t%s\t%s\n",
			t.Id, t.OrderId, t.Symbol, t.Type, t.Amount, t.Price, t.Total(), t.Time.Format(utils.TimeLayout))
	}
	return nil
}

func transHistory(ctx *cli.Context) error {
	p, err := historyParams(ctx)
	if err != nil {
		return err
	}
	c, err := utils.GetClient(ctx)
	if err != nil {
		return err
	}
	res, err := c.TransHistory(ctx.Context, p)
	if err != nil {
		return err
	}
	return printJSON(res)
}

func pull(ctx *cli.Context) error {
	n, err := utils.GetNode(ctx)
	if err != nil {
		return err
	}
	defer n.Close(ctx.Context)
	return n.PullHistory(ctx.Context)
}

func export(ctx *cli.Context) error {
	start, end, err := utils.ParseStartEndTime(ctx.String(utils.StartTimeFlag.Name), ctx.String(utils.EndTimeFlag.Name))
	if err != nil {
		return err
	}
	n, err := utils.GetNode(ctx)
	if err != nil {
		return err
	}
	defer n.Close(ctx.Context)
	return n.Export(ctx.Context, start, end, ctx.String(utils.CsvFlag.Name))
}

func snapshot(ctx *cli.Context) error {
	n, err := utils.GetNode(ctx)
	if err != nil {
		return err
	}
	defer n.Close(ctx.Context)
	assets, err := n.Snapshot(ctx.Context)
	if err != nil {
		return err
	}
	for _, a := range assets {
		fmt.Printf("%s\t%s\t%s\t%s\n", a.Currency, a.Amount, a.Price, aurora.Bold(a.Value))
	}
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
