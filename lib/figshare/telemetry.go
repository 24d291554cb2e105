package figshare

import (
	"figstats/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("figshare")
var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables request and response capture on clients
// created afterwards.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
