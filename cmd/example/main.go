// Command example routes a few commands through a wrapped handler chain.
//
// Run from the repository root with ENVIRONMENT=local.
package main

import (
	"context"
	"time"

	"github.com/code19m/errx"
	"github.com/google/uuid"

	"github.com/rise-and-shine/cmdtarget/alert"
	"github.com/rise-and-shine/cmdtarget/cfgloader"
	"github.com/rise-and-shine/cmdtarget/cqrs/command"
	"github.com/rise-and-shine/cmdtarget/cqrs/command/wrapper"
	"github.com/rise-and-shine/cmdtarget/logger"
	"github.com/rise-and-shine/cmdtarget/marker"
	"github.com/rise-and-shine/cmdtarget/target"
	"github.com/rise-and-shine/cmdtarget/tracing"
	"github.com/rise-and-shine/cmdtarget/val"
)

type Config struct {
	Service struct {
		Name    string `yaml:"name"    validate:"required" default:"orders"`
		Version string `yaml:"version" default:"v0.0.0"`
	} `yaml:"service"`

	Logger  logger.Config  `yaml:"logger"`
	Tracing tracing.Config `yaml:"tracing"`
	Alert   alert.Config   `yaml:"alert"`

	CommandTimeout time.Duration `yaml:"command_timeout" default:"5s"`
}

// routingKey marks members that route a command to its aggregate.
//
//nolint:gochecknoglobals // marker identity
var routingKey = marker.New("RoutingKey", "routing", "key", marker.TargetAggregateIdentifier)

type OrderCommand interface {
	isOrderCommand()
}

type ShipOrder struct {
	OrderID  uuid.UUID `aggregate:"identifier"`
	Revision int64     `aggregate:"version"`
}

type CancelOrder struct {
	Key    string `routing:"key"`
	Reason string `validate:"required"`
}

type RenameOrder struct {
	order string
	Title string
}

func (r RenameOrder) Order() string { return r.order }

type Broadcast struct {
	Text string
}

func (ShipOrder) isOrderCommand()   {}
func (CancelOrder) isOrderCommand() {}
func (RenameOrder) isOrderCommand() {}
func (Broadcast) isOrderCommand()   {}

type Result struct {
	Handled string
}

func main() {
	cfg := cfgloader.MustLoad[Config]()

	logger.SetGlobal(cfg.Logger)
	defer func() { _ = logger.Sync() }()

	shutdown, err := tracing.InitGlobalTracer(cfg.Tracing, cfg.Service.Name, cfg.Service.Version)
	if err != nil {
		logger.Errorx(err)
		return
	}
	defer func() { _ = shutdown(context.Background()) }()

	alerts, err := alert.NewProvider(cfg.Alert, cfg.Service.Name, cfg.Service.Version)
	if err != nil {
		logger.Errorx(err)
		return
	}

	if err = marker.Declare(routingKey); err != nil {
		logger.Errorx(err)
		return
	}
	marker.MarkMethod[RenameOrder]("Order", marker.TargetAggregateIdentifier)

	resolver, err := target.NewBuilder().Build()
	if err != nil {
		logger.Errorx(err)
		return
	}
	logger.Infof("using %s", resolver)

	log := logger.Named("example")

	handler := command.Func[OrderCommand, Result](func(ctx context.Context, _ OrderCommand) (Result, error) {
		t, _ := target.FromContext(ctx)
		return Result{Handled: t.String()}, nil
	})

	cmd := command.Chain(handler,
		wrapper.NewMetaInjectCommandWrapper[OrderCommand, Result](cfg.Service.Name, cfg.Service.Version),
		wrapper.NewAlertCommandWrapper[OrderCommand, Result](log, alerts, "order_command"),
		wrapper.NewTimeoutCommandWrapper[OrderCommand, Result](cfg.CommandTimeout),
		wrapper.NewValidationCommandWrapper[OrderCommand, Result](log, "order_command"),
		wrapper.NewTargetCommandWrapper[OrderCommand, Result](log, resolver, "order_command"),
		wrapper.NewTracingCommandWrapper[OrderCommand, Result](),
		wrapper.NewLoggerCommandWrapper[OrderCommand, Result](log, "order_command"),
		wrapper.NewRecoveryCommandWrapper[OrderCommand, Result](log, "order_command"),
	)

	inputs := []OrderCommand{
		ShipOrder{OrderID: uuid.New(), Revision: 3},
		CancelOrder{Key: "order-42", Reason: "duplicate"},
		CancelOrder{Key: "order-43"},
		RenameOrder{order: "order-7", Title: "gift"},
		Broadcast{Text: "hello"},
	}

	ctx := context.Background()
	for _, input := range inputs {
		result, err := cmd.Execute(ctx, input)
		if err != nil {
			if target.IsInvalidTarget(err) || errx.IsCodeIn(err, val.CodeValidationFailed) {
				log.Warnf("rejected %T", input)
				continue
			}
			log.Errorx(err)
			continue
		}
		log.Infof("handled %s", result.Handled)
	}
}
