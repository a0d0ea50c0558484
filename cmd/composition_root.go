package cmd

import (
	"tehnoplast/internal/adapters/out/postgres"
	"tehnoplast/internal/core/application/usecases/commands"
	"tehnoplast/internal/core/application/usecases/queries"
	"tehnoplast/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	packer     *services.Packer
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	packerConfig := services.DefaultPackerConfig()
	if config.PalletCapacity > 0 {
		packerConfig.Capacity = config.PalletCapacity
	}
	packerConfig.AllowMixedGroups = config.AllowMixedGroups

	packer, err := services.NewPacker(packerConfig)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		packer:     packer,
		config:     config,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePackOrderCommandHandler() commands.PackOrderCommandHandler {
	var f commands.PackOrderUoWFactory = FuncPackOrderUoWFactory(func() commands.PackOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPackOrderCommandHandler(f, c.packer)
}

func (c *CompositionRoot) CreateIssueInvoiceCommandHandler() commands.IssueInvoiceCommandHandler {
	var f commands.IssueInvoiceUoWFactory = FuncIssueInvoiceUoWFactory(func() commands.IssueInvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIssueInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRestoreOrderCommandHandler() commands.RestoreOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestoreOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUnpackedOrdersQueryHandler() queries.GetUnpackedOrdersQueryHandler {
	return queries.NewGetUnpackedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPalletPlanQueryHandler() queries.GetPalletPlanQueryHandler {
	return queries.NewGetPalletPlanQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncPackOrderUoWFactory func() commands.PackOrderUoW

func (f FuncPackOrderUoWFactory) Create() commands.PackOrderUoW {
	return f()
}

type FuncIssueInvoiceUoWFactory func() commands.IssueInvoiceUoW

func (f FuncIssueInvoiceUoWFactory) Create() commands.IssueInvoiceUoW {
	return f()
}
