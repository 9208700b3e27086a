package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// dashboard renders the admin overview: brand and blind-box counts, fetched
// in parallel and joined before anything is printed.
func (a *App) dashboard(ctx context.Context) error {
	var brandCount, boxCount int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := a.api.Brands(gctx)
		if err != nil {
			return err
		}
		if resp.Success {
			brandCount = len(resp.Data)
		}
		return nil
	})
	g.Go(func() error {
		resp, err := a.api.BlindBoxes(gctx)
		if err != nil {
			return err
		}
		if resp.Success {
			boxCount = len(resp.Data)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.notifyFailure(err, "Failed to load dashboard")
		return nil
	}

	printlnFn("Admin Dashboard")
	printlnFn(fmt.Sprintf("  Brands:      %d", brandCount))
	printlnFn(fmt.Sprintf("  Blind boxes: %d", boxCount))
	printlnFn("Use 'open /admin/brands' or 'open /admin/blindboxes' to manage them.")
	return nil
}
