package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

// eventPublisher is the outbound port plus its shutdown hook.
type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

// CompositionRoot owns the shared dependencies and builds every handler from
// them. Handlers are cheap values and are created per call.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	clock      kernel.Clock
	assigner   commands.RiderAssigner
	publisher  eventPublisher
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot connects the Kafka producer when KAFKA_HOST is set;
// otherwise events are only logged.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	publisher, err := newEventPublisher(config, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		clock:      kernel.SystemClock{},
		assigner:   commands.NewRiderAssigner(),
		publisher:  publisher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
	}, nil
}

func newEventPublisher(config Config, logger *slog.Logger) (eventPublisher, error) {
	if config.KafkaHost == "" {
		logger.Warn("KAFKA_HOST is not set, order events will not be published")
		return kafka.NewNopPublisher(logger), nil
	}

	producer, err := kafka.NewSyncProducer(strings.Split(config.KafkaHost, ","))
	if err != nil {
		return nil, fmt.Errorf("failed to connect kafka producer: %w", err)
	}
	publisher, err := kafka.NewPublisher(producer, config.KafkaOrderChangedTopic)
	if err != nil {
		_ = producer.Close()
		return nil, err
	}
	return publisher, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.fullUoWFactory(), c.assigner, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.fullUoWFactory(), c.assigner, c.clock)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRejectDeliveryCommandHandler() commands.RejectDeliveryCommandHandler {
	return commands.NewRejectDeliveryCommandHandler(c.fullUoWFactory(), c.assigner, c.clock)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.CreateUpdateOrderStatusCommandHandler())
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateReclaimExpiredAssignmentsCommandHandler() commands.ReclaimExpiredAssignmentsCommandHandler {
	return commands.NewReclaimExpiredAssignmentsCommandHandler(c.fullUoWFactory(), c.assigner, c.clock, c.config.SLAWindow)
}

func (c *CompositionRoot) CreateAssignPendingOrdersCommandHandler() commands.AssignPendingOrdersCommandHandler {
	return commands.NewAssignPendingOrdersCommandHandler(c.fullUoWFactory(), c.assigner, c.clock)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderOrdersQueryHandler() queries.GetRiderOrdersQueryHandler {
	return queries.NewGetRiderOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllRidersQueryHandler() queries.GetAllRidersQueryHandler {
	return queries.NewGetAllRidersQueryHandler(c.gormDB)
}

// CreateJobManager schedules the SLA sweep and the pending dispatch retry.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateReclaimExpiredAssignmentsCommandHandler(),
		c.CreateAssignPendingOrdersCommandHandler(),
		jobs.Schedule{
			SLASweepInterval: c.config.SLASweepInterval,
			DispatchInterval: c.config.DispatchInterval,
			DispatchBatch:    c.config.DispatchBatch,
		},
		c.logger,
	)
}

// CreateHTTPServer binds every use case to the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		MarkOrderPaid:     c.CreateMarkOrderPaidCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		AcceptDelivery:    c.CreateAcceptDeliveryCommandHandler(),
		RejectDelivery:    c.CreateRejectDeliveryCommandHandler(),
		CompleteDelivery:  c.CreateCompleteDeliveryCommandHandler(),
		CreateRider:       c.CreateCreateRiderCommandHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetRiderOrders:    c.CreateGetRiderOrdersQueryHandler(),
		GetAllRiders:      c.CreateGetAllRidersQueryHandler(),
	}, c.logger)
}

// Close releases the event producer.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// FuncRiderUoWFactory adapts a function to commands.RiderUoWFactory.
type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

// FuncOrderUoWFactory adapts a function to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
