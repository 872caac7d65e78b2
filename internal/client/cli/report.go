package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/renewadmin/internal/client/forms"
	"github.com/dmitrijs2005/renewadmin/internal/client/models"
)

const MsgEndBeforeStart = "Tanggal akhir tidak boleh sebelum tanggal mulai"

var errUnknownReport = errors.New("unknown report command")

// Report runs "report preview" or "report download". Both ask for the
// filter first.
func (a *App) Report(ctx context.Context, sub string) error {
	if sub != "preview" && sub != "download" {
		a.println("Usage: report preview|download")
		return errUnknownReport
	}

	_, cancel, ok := a.protect(ctx)
	if !ok {
		return errNoSession
	}
	defer cancel()

	filter, err := a.promptFilter(ctx)
	if err != nil {
		return err
	}

	if sub == "preview" {
		p, err := a.reports.Preview(ctx, filter)
		if err != nil {
			a.fail(ctx, err)
			return err
		}
		a.write(func(w io.Writer) { writeReport(w, p) })
		return nil
	}

	loc, err := a.reports.DownloadExcel(ctx, filter, a.sink)
	if err != nil {
		a.fail(ctx, err)
		return err
	}
	a.printf("Laporan disimpan: %s\n", loc)
	return nil
}

func (a *App) promptFilter(ctx context.Context) (models.ReportFilter, error) {
	hooks := filterHooks(a)
	f := forms.New(models.ReportFilter{}, nil, forms.Options[models.ReportFilter]{
		Check:  hooks.check,
		Clock:  a.clock,
		Logger: a.log,
	})
	defer f.Close()

	pending := hooks.fields
	for {
		for _, fld := range pending {
			if err := promptField(ctx, a, f, fld); err != nil {
				return models.ReportFilter{}, err
			}
		}
		if f.Validate() {
			return f.Draft(), nil
		}
		errs := f.Errors()
		pending = pending[:0:0]
		for _, fld := range hooks.fields {
			if msg, ok := errs[fld.name]; ok {
				a.printf("  %s: %s\n", fld.label, msg)
				pending = append(pending, fld)
			}
		}
		if len(pending) == 0 {
			return models.ReportFilter{}, forms.ErrValidation
		}
	}
}

func filterHooks(a *App) formHooks[models.ReportFilter] {
	return formHooks[models.ReportFilter]{
		fields: []field[models.ReportFilter]{
			textField("start_date", "Dari tanggal (YYYY-MM-DD)", func(f *models.ReportFilter) *string { return &f.StartDate }),
			textField("end_date", "Sampai tanggal (YYYY-MM-DD)", func(f *models.ReportFilter) *string { return &f.EndDate }),
			refField("client_id", "Klien", func(f *models.ReportFilter) *int64 { return &f.ClientID },
				lookup(a.catalog.Clients, func(r models.Client) (int64, string) { return r.ID, r.Name })),
			refField("service_type_id", "Tipe layanan", func(f *models.ReportFilter) *int64 { return &f.ServiceTypeID },
				lookup(a.catalog.ServiceTypes, func(r models.ServiceType) (int64, string) { return r.ID, r.Name })),
			refField("service_category_id", "Kategori", func(f *models.ReportFilter) *int64 { return &f.ServiceCategoryID },
				lookup(a.catalog.ServiceCategories, func(r models.ServiceCategory) (int64, string) { return r.ID, r.Name })),
			textField("status", "Status", func(f *models.ReportFilter) *string { return &f.Status }),
		},
		check: func(f models.ReportFilter) map[string]string {
			// Dates are already YYYY-MM-DD, so string order is date order.
			if f.StartDate != "" && f.EndDate != "" && f.EndDate < f.StartDate {
				return map[string]string{"end_date": MsgEndBeforeStart}
			}
			return nil
		},
	}
}

func writeReport(w io.Writer, p *models.ReportPreview) {
	if len(p.Rows) == 0 {
		fmt.Fprintln(w, "Tidak ada data")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLayanan\tKlien\tTipe\tVendor\tBerakhir\tHarga\tStatus")
	for _, r := range p.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ServiceID, r.ServiceName, r.ClientName, r.ServiceTypeName, r.VendorName,
			r.EndDate, formatMoney(r.FinalPrice), r.Status)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Total: %d layanan, %s\n", p.TotalCount, formatMoney(p.TotalPrice))
}

// Remind sends a WhatsApp reminder for a service. The message is optional;
// the backend falls back to its template.
func (a *App) Remind(ctx context.Context, serviceID string) error {
	id, ok := parseID(serviceID)
	if !ok {
		a.printf("ID tidak valid: %s\n", serviceID)
		return errBadValue
	}

	_, cancel, ok := a.protect(ctx)
	if !ok {
		return errNoSession
	}
	defer cancel()

	msg, err := GetMultiline(a.reader, "Pesan (kosongkan untuk template bawaan)", a.out)
	if err != nil {
		return err
	}

	if err := a.reminders.SendWA(ctx, id, msg); err != nil {
		a.fail(ctx, err)
		return err
	}
	a.println(MsgReminderSent)
	a.refreshIfShowing(ctx, "walog")
	return nil
}
