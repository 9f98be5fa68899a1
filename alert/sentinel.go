package alert

import (
	"context"
	"maps"
	"net"
	"strconv"

	"github.com/code19m/errx"
	sentinelpb "github.com/code19m/sentinel/pb"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// SentinelProvider delivers alerts to Sentinel over gRPC.
type SentinelProvider struct {
	cfg            Config
	serviceName    string
	serviceVersion string
	client         sentinelpb.SentinelServiceClient
	conn           *grpc.ClientConn
}

// NewSentinelProvider creates the gRPC client for cfg.SentinelHost:cfg.SentinelPort.
// The connection is established lazily on the first alert.
func NewSentinelProvider(cfg Config, serviceName, serviceVersion string) (*SentinelProvider, error) {
	conn, err := grpc.NewClient(
		net.JoinHostPort(cfg.SentinelHost, strconv.Itoa(cfg.SentinelPort)),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{
			"sentinel_host": cfg.SentinelHost,
			"sentinel_port": cfg.SentinelPort,
		}))
	}

	return &SentinelProvider{
		cfg:            cfg,
		serviceName:    serviceName,
		serviceVersion: serviceVersion,
		client:         sentinelpb.NewSentinelServiceClient(conn),
		conn:           conn,
	}, nil
}

// SendError sends one alert, bounded by cfg.SendTimeout and detached from ctx cancellation.
// The caller's details are copied; service_version is added to the copy.
func (sp *SentinelProvider) SendError(
	ctx context.Context,
	errCode, msg, operation string,
	details map[string]string,
) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sp.cfg.SendTimeout)
	defer cancel()

	payload := make(map[string]string, len(details)+1)
	maps.Copy(payload, details)
	payload["service_version"] = sp.serviceVersion

	_, err := sp.client.SendError(ctx, &sentinelpb.ErrorInfo{
		Code:      errCode,
		Message:   msg,
		Service:   sp.serviceName,
		Operation: operation,
		Details:   payload,
	})
	return errx.Wrap(err)
}

// Close releases the gRPC connection.
func (sp *SentinelProvider) Close() error {
	return errx.Wrap(sp.conn.Close())
}
