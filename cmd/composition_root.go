package cmd

import (
	"log/slog"

	"pizzeria/internal/adapters/out/inmem"
	"pizzeria/internal/adapters/out/notify"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/adapters/out/postgres/settingsrepo"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	settings   *settingsrepo.CachedSettingsProvider
	dispatcher *notify.Dispatcher
	policy     services.AccessPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	defaults := ports.StoreSettings{
		SendCustomerNotifications: configs.SendCustomerNotifications,
		DefaultDeliveryFee:        kernel.NewMoneyFromCents(configs.DefaultDeliveryFeeCents),
	}
	settings := settingsrepo.NewCachedSettingsProvider(
		settingsrepo.NewGormSettingsRepository(gormDB),
		defaults,
	)

	sender := notify.NewSendGridSender(
		configs.SendGridAPIKey,
		configs.EmailFromName,
		configs.EmailFromAddr,
	)
	dispatcher := notify.NewDispatcher(
		settings,
		inmem.NewStaticCustomerDirectory(),
		sender,
		logger,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		settings:   settings,
		dispatcher: dispatcher,
		policy:     services.NewAccessPolicy(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.settings, c.dispatcher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.policy, c.dispatcher)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository(), c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory.Create().OrderRepository(), c.policy)
}

func (c *CompositionRoot) CreateListAuditEntriesQueryHandler() queries.ListAuditEntriesQueryHandler {
	return queries.NewListAuditEntriesQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.settings, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
