package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"multimapdb/internal/config"
	"multimapdb/internal/creator"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	errUnknownLoggerLevel = errors.New("unknown logger level")
)

func main() {
	query := flag.String("c", "", "execute a single query and exit")
	flag.Parse()

	conf := config.Load()

	logger := createLogger(&conf.LoggingConfig)
	defer func() {
		_ = logger.Sync()
	}()

	c := creator.NewCreator(logger, conf)

	db, err := c.CreateDatabase()
	if err != nil {
		logger.Fatal("Failed to create database", zap.Error(err))
	}

	if *query != "" {
		response, err := db.Execute(*query)
		fmt.Println(response)
		if err != nil {
			_ = logger.Sync()
			os.Exit(1)
		}
		return
	}

	cli, err := c.CreateConsole(db)
	if err != nil {
		logger.Fatal("Failed to create console", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- cli.Run(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Error("console stopped with error", zap.Error(err))
		}
	case <-ctx.Done():
		fmt.Println()
		logger.Info("shutting down...", zap.Int("keys", db.Size()))
	}
}

func createLogger(conf *config.LoggingConfig) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel = zapcore.InfoLevel

	levelByName := map[string]zapcore.Level{
		"info":  zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}

	var found bool
	if zapLevel, found = levelByName[conf.Level]; !found {
		log.Fatal(errUnknownLoggerLevel)
	}

	outputPaths := []string{"stderr"}
	if conf.Output != "" {
		outputPaths = append(outputPaths, conf.Output)
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapLevel),
		DisableCaller:     false,
		DisableStacktrace: false,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputPaths,
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid": os.Getpid(),
		},
		Development: false,
		Sampling:    nil,
	}

	return zap.Must(cfg.Build())
}
