package quiz

import (
	"eformify-backend/lib/restyutil"
	"eformify-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("eformify.lib.scrapers.quiz")
var meter = telemetry.Meter("eformify.lib.scrapers.quiz")

var extractedCounter, _ = meter.Int64Counter("scrape.extracted_questions")
var strategyFailureCounter, _ = meter.Int64Counter("scrape.strategy_failures")

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput makes fetchers created afterwards dump their http
// exchanges into `out` when debug logging is enabled.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
