package main

import (
	"context"
	"eformify-backend/lib/serviceutil"
	"eformify-backend/lib/sqliteutil"
	"eformify-backend/lib/timezone"
	"flag"
	"log/slog"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "Path to the config file.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	tel := InitTelemetry(ctx, *verbose)
	defer tel.Shutdown(context.Background())

	cfg, err := ReadConfig(*configPath)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	err = timezone.SetLocation(cfg.Timezone)
	if err != nil {
		serviceutil.Fatal("load timezone", err)
	}

	database, err := sqliteutil.OpenDB(Schema, cfg.Database)
	if err != nil {
		serviceutil.Fatal("open database", err)
	}
	defer database.Close()

	err = serviceutil.StartHttpServer(ctx, cfg.Http.Port, NewHandler(database, cfg))
	if err != nil {
		slog.Error("http server stopped", "err", err)
	}
	slog.Info("shutting down")
}
