// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"tehnoplast/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// PalletRepoFactory provides access to the pallet repository within a transaction.
	PalletRepoFactory interface {
		PalletRepository() ports.PalletRepository
	}

	// CounteragentRepoFactory provides access to the counteragent repository within a transaction.
	CounteragentRepoFactory interface {
		CounteragentRepository() ports.CounteragentRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that modify the order aggregate alone.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation: the order is
	// written, the counterparty, warehouse and products are only resolved.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		CounteragentRepoFactory
		WarehouseRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// PackOrderUoW manages transactions for packing: the order and catalog
	// are read, the pallet plan is replaced atomically.
	PackOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		PalletRepoFactory
	}

	// PackOrderUoWFactory creates new packing unit of work instances.
	PackOrderUoWFactory interface {
		Create() PackOrderUoW
	}

	// IssueInvoiceUoW manages transactions for invoice issuing: the order is
	// read, the invoice is written.
	IssueInvoiceUoW interface {
		TxManager
		OrderRepoFactory
		InvoiceRepoFactory
	}

	// IssueInvoiceUoWFactory creates new invoice issuing unit of work instances.
	IssueInvoiceUoWFactory interface {
		Create() IssueInvoiceUoW
	}
)
