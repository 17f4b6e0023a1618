package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/xyths/btce/cmd/utils"
)

var app *cli.App

func init() {
	app = &cli.App{
		Name:    filepath.Base(os.Args[0]),
		Usage:   "the BTC-e trading api client",
		Version: "0.1.0",
	}

	app.Commands = []*cli.Command{
		infoCommand,
		tickerCommand,
		depthCommand,
		tradesCommand,
		accountCommand,
		buyCommand,
		sellCommand,
		ordersCommand,
		orderCommand,
		cancelCommand,
		historyCommand,
		snapshotCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFlag,
		utils.KeyFlag,
		utils.SecretFlag,
		utils.HostFlag,
		utils.DebugFlag,
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	if err := app.RunContext(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
