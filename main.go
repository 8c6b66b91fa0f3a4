package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"concord/internal/config"
	"concord/internal/engine"
)

func setupLogger(cfg config.File) (*zap.SugaredLogger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.LogToFile {
		zcfg.OutputPaths = []string{"concord-client.log", "stdout"}
	} else {
		zcfg.OutputPaths = []string{"stdout"}
	}
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zcfg.Level = level

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func main() {
	configPath := flag.String("config", "config.json", "path to the client engine's config file")
	nickname := flag.String("nickname", "", "nickname to connect with")
	flag.Parse()

	fmt.Println("Reading config file...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	sugar, err := setupLogger(cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer sugar.Sync()

	if *nickname == "" {
		sugar.Fatal("a -nickname is required")
	}

	eng := engine.New(cfg, sugar)

	sugar.Infof("connecting to %s as %s", cfg.Address, *nickname)
	eng.Connect(*nickname)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	sugar.Info("shutting down")
	eng.Disconnect()
}
