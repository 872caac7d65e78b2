package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/renewadmin/internal/client/listing"
	"github.com/dmitrijs2005/renewadmin/internal/client/session"
)

// column is one table column. Columns with an empty sortKey cannot be
// sorted on.
type column[T any] struct {
	title   string
	sortKey string
	value   func(T) string
}

// listScreen is an open list. Only one is active at a time.
type listScreen interface {
	resource() string
	load(ctx context.Context)
	next(ctx context.Context) bool
	prev(ctx context.Context) bool
	search(ctx context.Context, text string)
	sort(ctx context.Context, field string) error
	limit(ctx context.Context, n int) error
	refresh(ctx context.Context)
	sortKeys() []string
	close()
}

type table[T any] struct {
	app      *App
	name     string
	cols     []column[T]
	ctrl     *listing.Controller[T]
	cancel   session.CancelFunc
	rendered chan struct{}
	wait     time.Duration
}

func openTable[T any](a *App, name string, fetch listing.FetchFunc[T], cols []column[T], sortKey string, cancel session.CancelFunc) *table[T] {
	t := &table[T]{
		app:      a,
		name:     name,
		cols:     cols,
		cancel:   cancel,
		rendered: make(chan struct{}, 1),
		wait:     a.cfg.SearchDebounce + a.cfg.RequestTimeout,
	}
	t.ctrl = listing.NewController(fetch, listing.NewQuery(a.cfg.DefaultPageLimit, sortKey), t.render, listing.Options{
		Debounce: a.cfg.SearchDebounce,
		Clock:    a.clock,
		Logger:   a.log.With("list", name),
	})
	return t
}

func (t *table[T]) resource() string { return t.name }

func (t *table[T]) load(ctx context.Context) { t.ctrl.Load(ctx) }

func (t *table[T]) next(ctx context.Context) bool { return t.ctrl.NextPage(ctx) }

func (t *table[T]) prev(ctx context.Context) bool { return t.ctrl.PrevPage(ctx) }

func (t *table[T]) refresh(ctx context.Context) { t.ctrl.Refresh(ctx) }

func (t *table[T]) limit(ctx context.Context, n int) error { return t.ctrl.SetLimit(ctx, n) }

// search returns once the debounced fetch has been rendered, the wait
// elapsed or ctx ended.
func (t *table[T]) search(ctx context.Context, text string) {
	select {
	case <-t.rendered:
	default:
	}
	t.ctrl.SetSearch(ctx, text)

	timer := time.NewTimer(t.wait)
	defer timer.Stop()
	select {
	case <-t.rendered:
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (t *table[T]) sort(ctx context.Context, field string) error {
	if !slices.Contains(t.sortKeys(), field) {
		return fmt.Errorf("kolom %q tidak bisa diurutkan, pilihan: %s", field, strings.Join(t.sortKeys(), ", "))
	}
	t.ctrl.ToggleSort(ctx, field)
	return nil
}

func (t *table[T]) sortKeys() []string {
	var keys []string
	for _, c := range t.cols {
		if c.sortKey != "" {
			keys = append(keys, c.sortKey)
		}
	}
	return keys
}

func (t *table[T]) close() {
	t.ctrl.Close()
	if t.cancel != nil {
		t.cancel()
	}
}

func (t *table[T]) render(p listing.Page[T]) {
	defer func() {
		select {
		case t.rendered <- struct{}{}:
		default:
		}
	}()

	if p.Err != nil {
		t.app.fail(context.Background(), p.Err)
		return
	}

	t.app.write(func(w io.Writer) {
		writeTable(w, t.cols, p)
	})
}

func writeTable[T any](w io.Writer, cols []column[T], p listing.Page[T]) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, 0, len(cols))
	for _, c := range cols {
		h := c.title
		if c.sortKey != "" && c.sortKey == p.Query.SortField {
			h += sortMark(p.Query.SortDirection)
		}
		headers = append(headers, h)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, row := range p.Rows {
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			cells = append(cells, c.value(row))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()

	if len(p.Rows) == 0 {
		fmt.Fprintln(w, "Tidak ada data")
	}

	nav := []string{fmt.Sprintf("Halaman %d", p.Query.Page), fmt.Sprintf("%d per halaman", p.Query.Limit)}
	if p.Query.Search != "" {
		nav = append(nav, fmt.Sprintf("cari %q", p.Query.Search))
	}
	if p.HasPrevious {
		nav = append(nav, "prev")
	}
	if p.HasNext {
		nav = append(nav, "next")
	}
	fmt.Fprintln(w, strings.Join(nav, " | "))
}

func sortMark(d listing.Direction) string {
	if d == listing.Ascending {
		return " ^"
	}
	return " v"
}
