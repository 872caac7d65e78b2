package listing

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/renewadmin/internal/clockx"
	"github.com/dmitrijs2005/renewadmin/internal/logging"
)

// FetchFunc loads one page for q.
type FetchFunc[T any] func(ctx context.Context, q Query) ([]T, error)

// Page is what a list screen renders after a load.
type Page[T any] struct {
	Query       Query
	Rows        []T
	HasPrevious bool
	HasNext     bool
	Err         error
	Cached      bool
}

type Options struct {
	// Debounce delays search-driven fetches until typing settles.
	Debounce time.Duration
	Clock    clockx.Clock
	Logger   logging.Logger
}

// Controller owns the query state of one list screen. Results are handed
// to the onPage callback; loads triggered directly run in the caller's
// goroutine, debounced ones run on the clock's timer.
type Controller[T any] struct {
	fetch  FetchFunc[T]
	onPage func(Page[T])
	opts   Options

	mu      sync.Mutex
	query   Query
	gen     uint64
	cache   map[int][]T
	hasNext bool
	pending clockx.Timer
	closed  bool
}

func NewController[T any](fetch FetchFunc[T], initial Query, onPage func(Page[T]), opts Options) *Controller[T] {
	if opts.Clock == nil {
		opts.Clock = clockx.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	if initial.Page < 1 {
		initial.Page = 1
	}
	if !ValidLimit(initial.Limit) {
		initial.Limit = DefaultLimit
	}
	if initial.SortDirection == "" {
		initial.SortDirection = Descending
	}
	return &Controller[T]{
		fetch:  fetch,
		onPage: onPage,
		opts:   opts,
		query:  initial,
		cache:  map[int][]T{},
	}
}

func (c *Controller[T]) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Load fetches the current page, serving it from the cache when present.
func (c *Controller[T]) Load(ctx context.Context) {
	c.mu.Lock()
	c.stopPendingLocked()
	gen := c.nextGenLocked()
	c.mu.Unlock()

	c.run(ctx, gen)
}

// Refresh drops the cache and reloads the current page.
func (c *Controller[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.resetCacheLocked()
	c.mu.Unlock()

	c.Load(ctx)
}

// SetSearch changes the search text, goes back to page 1 and schedules a
// fetch once no further change arrives within the debounce window.
func (c *Controller[T]) SetSearch(ctx context.Context, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.query.Search = text
	c.query.Page = 1
	c.resetCacheLocked()
	c.stopPendingLocked()
	gen := c.nextGenLocked()

	ctx = context.WithoutCancel(ctx)
	c.pending = c.opts.Clock.AfterFunc(c.opts.Debounce, func() {
		c.run(ctx, gen)
	})
}

// SetLimit changes the page size and reloads from page 1.
func (c *Controller[T]) SetLimit(ctx context.Context, limit int) error {
	if !ValidLimit(limit) {
		return ErrInvalidLimit
	}

	c.mu.Lock()
	c.query.Limit = limit
	c.query.Page = 1
	c.resetCacheLocked()
	c.mu.Unlock()

	c.Load(ctx)
	return nil
}

// ToggleSort flips the direction when field is already the sort field,
// otherwise sorts by field descending. Either way it reloads from page 1.
func (c *Controller[T]) ToggleSort(ctx context.Context, field string) {
	c.mu.Lock()
	if c.query.SortField == field {
		c.query.SortDirection = c.query.SortDirection.Toggle()
	} else {
		c.query.SortField = field
		c.query.SortDirection = Descending
	}
	c.query.Page = 1
	c.resetCacheLocked()
	c.mu.Unlock()

	c.Load(ctx)
}

// NextPage moves forward when the last page looked full. It reports whether
// a load was started.
func (c *Controller[T]) NextPage(ctx context.Context) bool {
	c.mu.Lock()
	if !c.hasNext {
		c.mu.Unlock()
		return false
	}
	c.query.Page++
	c.mu.Unlock()

	c.Load(ctx)
	return true
}

// PrevPage moves back unless already on page 1.
func (c *Controller[T]) PrevPage(ctx context.Context) bool {
	c.mu.Lock()
	if c.query.Page <= 1 {
		c.mu.Unlock()
		return false
	}
	c.query.Page--
	c.mu.Unlock()

	c.Load(ctx)
	return true
}

// Close stops a pending debounced fetch and discards any load in flight.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopPendingLocked()
	c.nextGenLocked()
}

func (c *Controller[T]) run(ctx context.Context, gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	q := c.query
	rows, cached := c.cache[q.Page]
	c.mu.Unlock()

	if cached {
		c.deliver(gen, q, rows, nil, true)
		return
	}

	c.opts.Logger.Debug(ctx, "list fetch", "page", q.Page, "limit", q.Limit,
		"order_by", q.SortField, "sort_by", q.SortDirection, "search", q.Search)

	rows, err := c.fetch(ctx, q)
	c.deliver(gen, q, rows, err, false)
}

func (c *Controller[T]) deliver(gen uint64, q Query, rows []T, err error, cached bool) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		c.opts.Logger.Debug(context.Background(), "dropping stale list response", "page", q.Page)
		return
	}

	p := Page[T]{Query: q, HasPrevious: q.Page > 1, Err: err, Cached: cached}
	if err == nil {
		p.Rows = rows
		p.HasNext = len(rows) == q.Limit
		c.cache[q.Page] = rows
	}
	c.hasNext = p.HasNext
	c.mu.Unlock()

	if c.onPage != nil {
		c.onPage(p)
	}
}

func (c *Controller[T]) nextGenLocked() uint64 {
	c.gen++
	return c.gen
}

func (c *Controller[T]) resetCacheLocked() {
	c.cache = map[int][]T{}
	c.hasNext = false
}

func (c *Controller[T]) stopPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}
