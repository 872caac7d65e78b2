package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/renewadmin/internal/client/forms"
)

// errAborted means the operator gave up; the message was already shown.
var errAborted = errors.New("aborted")

// Add creates a record of resource through its form.
func (a *App) Add(ctx context.Context, resource string) error {
	err := a.resourceCommand(ctx, resource, "", func(ops resourceOps, _ int64) error {
		return ops.add(ctx, a)
	})
	if err == nil {
		a.refreshIfShowing(ctx, resource)
	}
	return err
}

// Edit loads a record and runs its form.
func (a *App) Edit(ctx context.Context, resource, id string) error {
	err := a.resourceCommand(ctx, resource, id, func(ops resourceOps, n int64) error {
		return ops.edit(ctx, a, n)
	})
	if err == nil {
		a.refreshIfShowing(ctx, resource)
	}
	return err
}

// Delete removes a record after confirmation.
func (a *App) Delete(ctx context.Context, resource, id string) error {
	err := a.resourceCommand(ctx, resource, id, func(ops resourceOps, n int64) error {
		if !GetConfirm(a.reader, fmt.Sprintf("Hapus %s %d?", resource, n), a.out) {
			a.println("Dibatalkan")
			return errAborted
		}
		if err := ops.remove(ctx, a, n); err != nil {
			return err
		}
		a.println(MsgDeleted)
		return nil
	})
	if err == nil {
		a.refreshIfShowing(ctx, resource)
	}
	return err
}

// runForm prompts every field, submits, and on validation errors prompts
// again only for the invalid fields and the fields depending on them. A
// failed submit keeps the draft and offers a retry, optionally after
// editing every field again. After a successful save it returns once the
// form asks to go back to the list.
func runForm[T any](ctx context.Context, a *App, hooks formHooks[T], initial T, submit forms.SubmitFunc[T]) error {
	done := make(chan struct{})
	var once sync.Once

	f := forms.New(initial, submit, forms.Options[T]{
		Derive:        hooks.derive,
		Check:         hooks.check,
		Done:          func() { once.Do(func() { close(done) }) },
		Notifier:      a,
		RedirectDelay: a.cfg.SubmitRedirectDelay,
		Clock:         a.clock,
		Logger:        a.log,
	})
	defer f.Close()

	pending := hooks.fields
	for {
		for _, fld := range pending {
			if err := promptField(ctx, a, f, fld); err != nil {
				return err
			}
		}

		err := f.Submit(ctx)
		switch {
		case err == nil:
			select {
			case <-done:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil

		case errors.Is(err, forms.ErrValidation):
			errs := f.Errors()
			pending = pending[:0:0]
			asked := map[string]bool{}
			for _, fld := range hooks.fields {
				msg, invalid := errs[fld.name]
				if invalid {
					a.printf("  %s: %s\n", fld.label, msg)
				}
				if invalid || anyOf(fld.dependsOn, asked) {
					pending = append(pending, fld)
					asked[fld.name] = true
				}
			}
			if len(pending) == 0 {
				for k, msg := range errs {
					a.printf("  %s: %s\n", k, msg)
				}
				return err
			}

		default:
			a.fail(ctx, err)
			if !a.isLoggedIn() || !GetConfirm(a.reader, "Simpan ulang?", a.out) {
				return errAborted
			}
			pending = nil
			if GetConfirm(a.reader, "Ubah data dulu?", a.out) {
				pending = hooks.fields
			}
		}
	}
}

func anyOf(names []string, set map[string]bool) bool {
	for _, n := range names {
		if set[n] {
			return true
		}
	}
	return false
}

// promptField asks for one value. Read-only fields are only shown, fields
// with choices list them first and a hidden field is reset. Empty input
// keeps the current value, "-" clears it.
func promptField[T any](ctx context.Context, a *App, f *forms.Form[T], fld field[T]) error {
	if fld.readOnly {
		a.printf("%s: %s\n", fld.label, fld.get(f.Draft()))
		return nil
	}

	if fld.choices != nil {
		show, opts, err := fld.choices(ctx, f.Draft())
		if err != nil {
			a.fail(ctx, err)
		}
		if !show {
			if fld.reset != nil {
				f.Update(fld.name, fld.reset)
			}
			return nil
		}
		if len(opts) > 0 {
			a.printf("  %s\n", formatChoices(opts))
		}
	}

	for {
		prompt := fld.label
		if cur := fld.get(f.Draft()); cur != "" {
			prompt += " [" + cur + "]"
		}

		var (
			in  string
			err error
		)
		if fld.multiline {
			in, err = GetMultiline(a.reader, prompt, a.out)
		} else {
			in, err = getSimpleText(a.reader, prompt, a.out)
		}
		if err != nil {
			return err
		}

		switch in {
		case "":
			return nil
		case "-":
			in = ""
		}

		var setErr error
		f.Update(fld.name, func(t *T) { setErr = fld.set(t, in) })
		if setErr == nil {
			return nil
		}
		a.println(forms.MsgInvalid)
	}
}
