package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// resourceOps erases the record type of a resourceDef.
type resourceOps interface {
	open(a *App, cancel func()) listScreen
	show(ctx context.Context, a *App, id int64) error
	add(ctx context.Context, a *App) error
	edit(ctx context.Context, a *App, id int64) error
	remove(ctx context.Context, a *App, id int64) error
	editable() bool
}

var registry = map[string]resourceOps{
	"clients":            clientDef(),
	"services":           serviceDef(),
	"vendors":            vendorDef(),
	"users":              userDef(),
	"roles":              roleDef(),
	"client_types":       clientTypeDef(),
	"client_statuses":    clientStatusDef(),
	"service_types":      serviceTypeDef(),
	"service_categories": serviceCategoryDef(),
	"walog":              waLogDef(),
}

func lookupResource(name string) (resourceOps, bool) {
	ops, ok := registry[strings.ToLower(name)]
	return ops, ok
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil && id > 0
}

func (s resourceDef[T]) open(a *App, cancel func()) listScreen {
	res := s.res(a.catalog)
	return openTable(a, s.name, res.List, s.cols, s.sortKey, cancel)
}

func (s resourceDef[T]) editable() bool { return s.form != nil }

func (s resourceDef[T]) show(ctx context.Context, a *App, id int64) error {
	rec, err := s.res(a.catalog).Get(ctx, id)
	if err != nil {
		return err
	}

	a.write(func(w io.Writer) {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "ID\t%d\n", id)
		if s.form != nil {
			for _, f := range s.form(a).fields {
				fmt.Fprintf(tw, "%s\t%s\n", f.label, f.get(*rec))
			}
		} else {
			for _, c := range s.cols {
				fmt.Fprintf(tw, "%s\t%s\n", c.title, c.value(*rec))
			}
		}
		if s.audit != nil {
			au := s.audit(*rec)
			fmt.Fprintf(tw, "Dibuat\t%s oleh %s\n", au.CreatedAt, au.CreatedBy)
			fmt.Fprintf(tw, "Diubah\t%s oleh %s\n", au.UpdatedAt, au.ModifiedBy)
		}
		_ = tw.Flush()
	})
	return nil
}

func (s resourceDef[T]) add(ctx context.Context, a *App) error {
	var draft T
	if s.newDraft != nil {
		draft = s.newDraft()
	}
	res := s.res(a.catalog)
	return runForm(ctx, a, s.form(a), draft, res.Create)
}

func (s resourceDef[T]) edit(ctx context.Context, a *App, id int64) error {
	res := s.res(a.catalog)
	rec, err := res.Get(ctx, id)
	if err != nil {
		return err
	}
	return runForm(ctx, a, s.form(a), *rec, func(ctx context.Context, draft T) error {
		return res.Update(ctx, id, draft)
	})
}

func (s resourceDef[T]) remove(ctx context.Context, a *App, id int64) error {
	return s.res(a.catalog).Delete(ctx, id)
}
