package main

import (
	"context"
	"eformify-backend/lib/restyutil"
	"eformify-backend/lib/scrapers/quiz"
	"eformify-backend/lib/serviceutil"
	"eformify-backend/lib/telemetry"
	"log/slog"
)

func InitTelemetry(ctx context.Context, verbose bool) telemetry.Telemetry {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, "eformify-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	telemetry.InstrumentPerfStats(ctx)

	if !verbose {
		return tel
	}

	output, err := restyutil.NewFilesystemOutput("<dev_state>/resty/quiz")
	if err != nil {
		slog.WarnContext(ctx, "failed to create resty output dir", "err", err)
		return tel
	}
	quiz.SetRestyInstrumentOutput(output)
	return tel
}
