package jobs

import (
	"context"
	"errors"
	"log/slog"

	"tehnoplast/internal/core/application/usecases/commands"
	"tehnoplast/internal/core/application/usecases/queries"
	"tehnoplast/internal/core/domain/services"
	"tehnoplast/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PackingJob periodically sweeps the unpacked order backlog and builds a
// pallet plan for each order. Runs every 30 seconds so freshly created
// orders get packed without manual intervention.
type PackingJob struct {
	unpackedHandler queries.GetUnpackedOrdersQueryHandler
	packHandler     commands.PackOrderCommandHandler
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewPackingJob creates a new job for packing the order backlog.
func NewPackingJob(
	unpackedHandler queries.GetUnpackedOrdersQueryHandler,
	packHandler commands.PackOrderCommandHandler,
	logger *slog.Logger,
) *PackingJob {
	return &PackingJob{
		unpackedHandler: unpackedHandler,
		packHandler:     packHandler,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "packing_job"),
	}
}

// Start begins the packing job to run every 30 seconds.
func (j *PackingJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		j.packBacklog(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Packing job started (running every 30 seconds)")
	return nil
}

// Stop stops the packing job.
func (j *PackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Packing job stopped")
}

// packBacklog packs every order currently without a pallet plan. One failed
// order does not stop the sweep.
func (j *PackingJob) packBacklog(ctx context.Context) {
	backlog, err := j.unpackedHandler.Handle(ctx, queries.NewGetUnpackedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load unpacked orders", "error", err)
		return
	}

	for _, row := range backlog {
		cmd, cmdErr := commands.NewPackOrderCommand(row.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build pack command",
				"order_id", row.ID.String(), "error", cmdErr)
			continue
		}

		plan, packErr := j.packHandler.Handle(ctx, cmd)
		if packErr != nil {
			j.logPackError(ctx, row.ID.String(), packErr)
			continue
		}

		j.logger.InfoContext(ctx, "Order packed",
			"order_id", row.ID.String(),
			"order_number", row.Number,
			"pallets", len(plan.Pallets),
			"remainders", len(plan.Remainders))

		for _, remainder := range plan.Remainders {
			j.logger.WarnContext(ctx, "Order line left unpacked",
				"order_id", row.ID.String(),
				"order_item_id", remainder.OrderItemID.String(),
				"quantity", remainder.Quantity,
				"reason", remainder.Reason)
		}
	}
}

// logPackError classifies packing failures: an order deleted mid-sweep or a
// catalog gap are expected operational noise, everything else is an error.
func (j *PackingJob) logPackError(ctx context.Context, orderID string, err error) {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, services.ErrProductNotFound) {
		j.logger.WarnContext(ctx, "Order skipped by packing job", "order_id", orderID, "error", err)
		return
	}

	j.logger.ErrorContext(ctx, "Packing job failed for order", "order_id", orderID, "error", err)
}
