// Package alert reports unexpected command failures to the Sentinel service.
package alert

import "context"

// Provider sends error alerts.
type Provider interface {
	// SendError reports an error identified by errCode that happened while running operation.
	// details carries string metadata such as the trace id and the targeted aggregate.
	SendError(ctx context.Context, errCode, msg, operation string, details map[string]string) error
}

// NewProvider returns a Sentinel backed provider, or a no-op provider when cfg.Disable is set.
func NewProvider(cfg Config, serviceName, serviceVersion string) (Provider, error) {
	if cfg.Disable {
		return noOpProvider{}, nil
	}
	return NewSentinelProvider(cfg, serviceName, serviceVersion)
}

type noOpProvider struct{}

func (noOpProvider) SendError(context.Context, string, string, string, map[string]string) error {
	return nil
}
