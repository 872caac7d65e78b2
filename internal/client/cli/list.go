package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/renewadmin/internal/client/client"
	"github.com/dmitrijs2005/renewadmin/internal/client/listing"
)

var (
	errUnknownResource = errors.New("unknown resource")
	errNoScreen        = errors.New("no list open")
)

// List opens the list screen of resource and shows its first page. The
// screen keeps its own session watch until it is replaced or closed.
func (a *App) List(ctx context.Context, resource string) error {
	ops, ok := lookupResource(resource)
	if !ok {
		a.printf("Resource tidak dikenal: %s (pilihan: %s)\n", resource, resourceList)
		return errUnknownResource
	}

	_, cancel, ok := a.protect(ctx)
	if !ok {
		return errNoSession
	}

	screen := ops.open(a, cancel)
	a.setScreen(screen)
	screen.load(ctx)
	return nil
}

// WALog opens the WhatsApp reminder log.
func (a *App) WALog(ctx context.Context) error {
	return a.List(ctx, "walog")
}

// withScreen runs fn on the open screen after the session check.
func (a *App) withScreen(ctx context.Context, fn func(listScreen) error) error {
	screen := a.currentScreen()
	if screen == nil {
		a.println(MsgNoScreen)
		return errNoScreen
	}
	if a.guard.Revalidate(ctx) {
		a.closeScreen()
		a.println(client.MsgSessionExpired)
		return errNoSession
	}
	return fn(screen)
}

func (a *App) Next(ctx context.Context) error {
	return a.withScreen(ctx, func(s listScreen) error {
		if !s.next(ctx) {
			a.println("Sudah di halaman terakhir")
		}
		return nil
	})
}

func (a *App) Prev(ctx context.Context) error {
	return a.withScreen(ctx, func(s listScreen) error {
		if !s.prev(ctx) {
			a.println("Sudah di halaman pertama")
		}
		return nil
	})
}

func (a *App) Search(ctx context.Context, text string) error {
	return a.withScreen(ctx, func(s listScreen) error {
		s.search(ctx, text)
		return nil
	})
}

func (a *App) Sort(ctx context.Context, field string) error {
	return a.withScreen(ctx, func(s listScreen) error {
		if err := s.sort(ctx, field); err != nil {
			a.println(err)
			return err
		}
		return nil
	})
}

func (a *App) Limit(ctx context.Context, n string) error {
	return a.withScreen(ctx, func(s listScreen) error {
		limit, err := listing.ParseLimit(n)
		if err != nil {
			a.printf("Jumlah baris harus salah satu dari %v\n", listing.AllowedLimits)
			return err
		}
		return s.limit(ctx, limit)
	})
}

func (a *App) Refresh(ctx context.Context) error {
	return a.withScreen(ctx, func(s listScreen) error {
		s.refresh(ctx)
		return nil
	})
}

// Show prints one record of the open list.
func (a *App) Show(ctx context.Context, id string) error {
	return a.withScreen(ctx, func(s listScreen) error {
		n, ok := parseID(id)
		if !ok {
			a.printf("ID tidak valid: %s\n", id)
			return errBadValue
		}
		ops, _ := lookupResource(s.resource())
		if err := ops.show(ctx, a, n); err != nil {
			a.fail(ctx, err)
			return err
		}
		return nil
	})
}

// resourceCommand resolves resource and id and runs fn under the guard.
func (a *App) resourceCommand(ctx context.Context, resource, id string, fn func(resourceOps, int64) error) error {
	ops, ok := lookupResource(resource)
	if !ok {
		a.printf("Resource tidak dikenal: %s (pilihan: %s)\n", resource, resourceList)
		return errUnknownResource
	}
	var n int64
	if id != "" {
		if n, ok = parseID(id); !ok {
			a.printf("ID tidak valid: %s\n", id)
			return errBadValue
		}
	}
	if !ops.editable() {
		a.printf("%s hanya bisa dilihat\n", resource)
		return errUnknownResource
	}

	_, cancel, ok := a.protect(ctx)
	if !ok {
		return errNoSession
	}
	defer cancel()

	if err := fn(ops, n); err != nil {
		if !errors.Is(err, errAborted) {
			a.fail(ctx, err)
		}
		return err
	}
	return nil
}

// refreshIfShowing reloads the open list when it shows resource.
func (a *App) refreshIfShowing(ctx context.Context, resource string) {
	if s := a.currentScreen(); s != nil && s.resource() == resource {
		s.refresh(ctx)
	}
}
