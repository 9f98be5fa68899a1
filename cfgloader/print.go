package cfgloader

import (
	"log/slog"

	"github.com/rise-and-shine/cmdtarget/mask"
)

// printConfig logs every loaded config value as its own attribute, keyed by the dotted yaml path.
// Values of fields tagged `mask:"true"` are replaced before they reach the log.
func printConfig(log *slog.Logger, config any) {
	fields := mask.Fields(config)

	attrs := make([]any, 0, fields.Len())
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		attrs = append(attrs, slog.Any(pair.Key, pair.Value))
	}

	log.Info("[cfgloader]: loaded config", attrs...)
}
