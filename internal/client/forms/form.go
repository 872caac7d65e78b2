package forms

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/dmitrijs2005/renewadmin/internal/client/client"
	"github.com/dmitrijs2005/renewadmin/internal/clockx"
	"github.com/dmitrijs2005/renewadmin/internal/logging"
)

// MsgSaved confirms a successful submit.
const MsgSaved = "Data berhasil disimpan"

var (
	ErrValidation    = errors.New("validation failed")
	ErrSubmitPending = errors.New("submit already in progress")
)

type Notifier interface {
	Notify(msg string)
}

// SubmitFunc sends the draft to the backend.
type SubmitFunc[T any] func(ctx context.Context, draft T) error

type Options[T any] struct {
	// Derive recomputes read-only fields after every edit.
	Derive func(*T)
	// Check adds cross-field rules on top of the validate tags.
	Check func(T) map[string]string
	// Done navigates back to the parent list.
	Done          func()
	Notifier      Notifier
	RedirectDelay time.Duration
	Validator     *Validator
	Clock         clockx.Clock
	Logger        logging.Logger
}

type Form[T any] struct {
	submit SubmitFunc[T]
	opts   Options[T]

	mu         sync.Mutex
	draft      T
	errs       map[string]string
	message    string
	submitting bool
	redirect   clockx.Timer
	closed     bool
}

// New starts a form from initial, which is either the defaults of a new
// record or the record being edited.
func New[T any](initial T, submit SubmitFunc[T], opts Options[T]) *Form[T] {
	if opts.Validator == nil {
		opts.Validator = NewValidator()
	}
	if opts.Clock == nil {
		opts.Clock = clockx.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	f := &Form[T]{submit: submit, opts: opts, draft: initial, errs: map[string]string{}}
	if opts.Derive != nil {
		opts.Derive(&f.draft)
	}
	return f
}

func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Update applies an edit to the draft and clears the error of that field.
func (f *Form[T]) Update(field string, edit func(*T)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	edit(&f.draft)
	delete(f.errs, field)
	if f.opts.Derive != nil {
		f.opts.Derive(&f.draft)
	}
}

func (f *Form[T]) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errs)
}

func (f *Form[T]) FieldError(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs[field]
}

// Message is the inline error of the last failed submit.
func (f *Form[T]) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// CanSubmit reports whether the submit control is enabled.
func (f *Form[T]) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.submitting && !f.closed
}

// Validate recomputes all field errors and reports whether the draft is valid.
func (f *Form[T]) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Form[T]) validateLocked() bool {
	errs := f.opts.Validator.Fields(f.draft)
	if f.opts.Check != nil {
		for k, v := range f.opts.Check(f.draft) {
			if errs == nil {
				errs = map[string]string{}
			}
			if _, ok := errs[k]; !ok {
				errs[k] = v
			}
		}
	}
	if errs == nil {
		errs = map[string]string{}
	}
	f.errs = errs
	return len(errs) == 0
}

// Submit validates and sends the draft. An invalid draft returns
// ErrValidation without calling the backend. On success the confirmation is
// shown and Done runs after RedirectDelay. On failure the draft is kept and
// Message holds the error text.
func (f *Form[T]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting || f.closed {
		f.mu.Unlock()
		return ErrSubmitPending
	}
	if !f.validateLocked() {
		f.mu.Unlock()
		return ErrValidation
	}
	f.submitting = true
	f.message = ""
	draft := f.draft
	f.mu.Unlock()

	err := f.submit(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.submitting = false
		f.message = client.UserMessage(err)
		f.opts.Logger.Warn(ctx, "submit failed", "error", err)
		return err
	}

	if f.opts.Notifier != nil {
		f.opts.Notifier.Notify(MsgSaved)
	}
	if f.opts.Done != nil && !f.closed {
		f.redirect = f.opts.Clock.AfterFunc(f.opts.RedirectDelay, f.finish)
	}
	return nil
}

func (f *Form[T]) finish() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	f.mu.Unlock()

	f.opts.Done()
}

// Close abandons the form; a pending redirect is cancelled.
func (f *Form[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.redirect != nil {
		f.redirect.Stop()
	}
}
