package jobs

import (
	"context"
	"log/slog"

	"salesledger/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// UnshippedOrdersJob periodically reports the orders still awaiting shipment.
// Runs every hour so operators see the open fulfillment backlog in the logs.
type UnshippedOrdersJob struct {
	handler queries.GetUnshippedOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewUnshippedOrdersJob creates a new job that reports the shipment backlog.
// Uses GetUnshippedOrdersQueryHandler to fetch the pending orders every hour.
func NewUnshippedOrdersJob(handler queries.GetUnshippedOrdersQueryHandler, logger *slog.Logger) *UnshippedOrdersJob {
	return &UnshippedOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "unshipped_orders_job"),
	}
}

// Start begins the backlog report job to run at the top of every hour.
func (j *UnshippedOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetUnshippedOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Unshipped orders report failed", "error", err)
			return
		}

		if len(orders) == 0 {
			j.logger.InfoContext(ctx, "No orders awaiting shipment")
			return
		}

		oldest := orders[0]
		j.logger.InfoContext(ctx, "Orders awaiting shipment",
			"count", len(orders),
			"oldestOrderId", oldest.ID,
			"oldestPlacedAt", oldest.PlacedAt,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unshipped orders job started (running every hour)")
	return nil
}

// Stop stops the backlog report job.
func (j *UnshippedOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unshipped orders job stopped")
}
