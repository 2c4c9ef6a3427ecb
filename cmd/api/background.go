package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	ratingReconcileSpec = "@every 1h"
	pushTokenPruneSpec  = "0 4 * * *"
	pushTokenMaxAge     = 90 * 24 * time.Hour
	backgroundJobBudget = 10 * time.Minute
)

// startBackgroundJobs schedules the periodic maintenance jobs. The caller
// stops the returned scheduler on shutdown.
func (app *application) startBackgroundJobs() (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc(ratingReconcileSpec, app.reconcileRatings); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(pushTokenPruneSpec, app.pruneStalePushTokens); err != nil {
		return nil, err
	}

	c.Start()
	app.logger.Infow("background jobs scheduled", "ratings", ratingReconcileSpec, "push_tokens", pushTokenPruneSpec)
	return c, nil
}

// reconcileRatings recomputes the stored average of every approved place.
func (app *application) reconcileRatings() {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundJobBudget)
	defer cancel()

	n, err := app.reviews.ReconcileRatings(ctx)
	if err != nil {
		app.logger.Errorf("Error reconciling ratings: %v", err)
		return
	}
	app.logger.Infof("Reconciled ratings of %d places at %s", n, time.Now().Format(time.RFC1123))
}

func (app *application) pruneStalePushTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundJobBudget)
	defer cancel()

	n, err := app.store.PushTokens.PruneStale(ctx, pushTokenMaxAge)
	if err != nil {
		app.logger.Errorf("Error pruning push tokens: %v", err)
		return
	}
	app.logger.Infof("Pruned %d stale push tokens", n)
}
