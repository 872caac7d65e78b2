package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/renewadmin/internal/client/forms"
	"github.com/dmitrijs2005/renewadmin/internal/client/models"
	"github.com/dmitrijs2005/renewadmin/internal/client/services"
)

const resourceList = "clients, services, vendors, users, roles, client_types, client_statuses, service_types, service_categories"

// formHooks are built per form so that fields can share state, such as
// whether the chosen service type needs a vendor.
type formHooks[T any] struct {
	fields []field[T]
	derive func(*T)
	check  func(T) map[string]string
}

// resourceDef binds a resource to its table columns and form.
type resourceDef[T any] struct {
	name     string
	res      func(*services.Catalog) services.Resource[T]
	sortKey  string
	cols     []column[T]
	form     func(a *App) formHooks[T]
	audit    func(T) models.Audit
	newDraft func() T
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func clientDef() resourceDef[models.Client] {
	return resourceDef[models.Client]{
		name:    "clients",
		res:     func(c *services.Catalog) services.Resource[models.Client] { return c.Clients },
		sortKey: "created_at",
		cols: []column[models.Client]{
			{"ID", "id", func(c models.Client) string { return itoa(c.ID) }},
			{"Nama", "name", func(c models.Client) string { return c.Name }},
			{"Email", "email", func(c models.Client) string { return c.Email }},
			{"Telepon", "", func(c models.Client) string { return c.Phone }},
			{"Tipe", "", func(c models.Client) string { return c.ClientTypeName }},
			{"Status", "", func(c models.Client) string { return c.ClientStatusName }},
			{"Dibuat", "created_at", func(c models.Client) string { return c.CreatedAt }},
		},
		form: func(a *App) formHooks[models.Client] {
			return formHooks[models.Client]{fields: []field[models.Client]{
				textField("name", "Nama", func(c *models.Client) *string { return &c.Name }),
				textField("email", "Email", func(c *models.Client) *string { return &c.Email }),
				textField("phone", "Telepon", func(c *models.Client) *string { return &c.Phone }),
				textField("address", "Alamat", func(c *models.Client) *string { return &c.Address }),
				textField("pic_name", "Nama PIC", func(c *models.Client) *string { return &c.PICName }),
				refField("client_type_id", "Tipe klien", func(c *models.Client) *int64 { return &c.ClientTypeID },
					lookup(a.catalog.ClientTypes, func(r models.ClientType) (int64, string) { return r.ID, r.Name })),
				refField("client_status_id", "Status klien", func(c *models.Client) *int64 { return &c.ClientStatusID },
					lookup(a.catalog.ClientStatuses, func(r models.ClientStatus) (int64, string) { return r.ID, r.Name })),
				notesField("notes", "Catatan", func(c *models.Client) *string { return &c.Notes }),
			}}
		},
		audit: func(c models.Client) models.Audit { return c.Audit },
	}
}

func serviceDef() resourceDef[models.Service] {
	return resourceDef[models.Service]{
		name:    "services",
		res:     func(c *services.Catalog) services.Resource[models.Service] { return c.Services },
		sortKey: "end_date",
		cols: []column[models.Service]{
			{"ID", "id", func(s models.Service) string { return itoa(s.ID) }},
			{"Layanan", "name", func(s models.Service) string { return s.Name }},
			{"Klien", "", func(s models.Service) string { return s.ClientName }},
			{"Tipe", "", func(s models.Service) string { return s.ServiceTypeName }},
			{"Vendor", "", func(s models.Service) string { return s.VendorName }},
			{"Berakhir", "end_date", func(s models.Service) string { return s.EndDate }},
			{"Harga", "final_price", func(s models.Service) string { return formatMoney(s.FinalPrice) }},
			{"Status", "", func(s models.Service) string { return s.Status }},
		},
		form:  serviceForm,
		audit: func(s models.Service) models.Audit { return s.Audit },
		newDraft: func() models.Service {
			return models.Service{DiscountType: models.DiscountAmount}
		},
	}
}

// serviceForm asks for a vendor only when the service type requires one.
// The vendor field is asked again whenever the service type is.
func serviceForm(a *App) formHooks[models.Service] {
	// requires_vendor per service type id, filled when the vendor field
	// looks the type up.
	needsVendor := map[int64]bool{}

	vendor := refField("vendor_id", "Vendor", func(s *models.Service) *int64 { return &s.VendorID }, nil)
	vendor.dependsOn = []string{"service_type_id"}
	vendor.choices = func(ctx context.Context, draft models.Service) (bool, []choice, error) {
		if draft.ServiceTypeID == 0 {
			return false, nil, nil
		}
		st, vendors, err := a.catalog.VendorOptions(ctx, draft.ServiceTypeID)
		if err != nil {
			return false, nil, err
		}
		needsVendor[draft.ServiceTypeID] = st.RequiresVendor
		out := make([]choice, 0, len(vendors))
		for _, v := range vendors {
			out = append(out, choice{id: v.ID, label: v.Name})
		}
		return st.RequiresVendor, out, nil
	}
	vendor.reset = func(s *models.Service) {
		s.VendorID = 0
		s.VendorName = ""
	}

	return formHooks[models.Service]{
		fields: []field[models.Service]{
			textField("name", "Nama layanan", func(s *models.Service) *string { return &s.Name }),
			refField("client_id", "Klien", func(s *models.Service) *int64 { return &s.ClientID },
				lookup(a.catalog.Clients, func(r models.Client) (int64, string) { return r.ID, r.Name })),
			refField("service_type_id", "Tipe layanan", func(s *models.Service) *int64 { return &s.ServiceTypeID },
				lookup(a.catalog.ServiceTypes, func(r models.ServiceType) (int64, string) { return r.ID, r.Name })),
			refField("service_category_id", "Kategori", func(s *models.Service) *int64 { return &s.ServiceCategoryID },
				lookup(a.catalog.ServiceCategories, func(r models.ServiceCategory) (int64, string) { return r.ID, r.Name })),
			vendor,
			textField("start_date", "Tanggal mulai (YYYY-MM-DD)", func(s *models.Service) *string { return &s.StartDate }),
			textField("end_date", "Tanggal berakhir (YYYY-MM-DD)", func(s *models.Service) *string { return &s.EndDate }),
			moneyField("normal_price", "Harga normal", func(s *models.Service) *float64 { return &s.NormalPrice }),
			boolField("discount_enabled", "Diskon", func(s *models.Service) *bool { return &s.DiscountEnabled }),
			enumField("discount_type", "Jenis diskon", func(s *models.Service) *models.DiscountType { return &s.DiscountType },
				models.DiscountAmount, models.DiscountPercentage),
			moneyField("discount", "Nilai diskon", func(s *models.Service) *float64 { return &s.Discount }),
			derivedField("final_price", "Harga akhir", func(s *models.Service) *float64 { return &s.FinalPrice }),
			notesField("notes", "Catatan", func(s *models.Service) *string { return &s.Notes }),
		},
		derive: (*models.Service).Recompute,
		check: func(s models.Service) map[string]string {
			errs := s.CheckDiscount()
			if needsVendor[s.ServiceTypeID] && s.VendorID == 0 {
				if errs == nil {
					errs = map[string]string{}
				}
				errs["vendor_id"] = MsgVendorRequired
			}
			return errs
		},
	}
}

// MsgVendorRequired is shown when the service type needs a vendor.
const MsgVendorRequired = "Vendor wajib dipilih untuk tipe layanan ini"

func vendorDef() resourceDef[models.Vendor] {
	return resourceDef[models.Vendor]{
		name:    "vendors",
		res:     func(c *services.Catalog) services.Resource[models.Vendor] { return c.Vendors },
		sortKey: "created_at",
		cols: []column[models.Vendor]{
			{"ID", "id", func(v models.Vendor) string { return itoa(v.ID) }},
			{"Nama", "name", func(v models.Vendor) string { return v.Name }},
			{"Email", "email", func(v models.Vendor) string { return v.Email }},
			{"Telepon", "", func(v models.Vendor) string { return v.Phone }},
			{"Website", "", func(v models.Vendor) string { return v.Website }},
		},
		form: func(*App) formHooks[models.Vendor] {
			return formHooks[models.Vendor]{fields: []field[models.Vendor]{
				textField("name", "Nama", func(v *models.Vendor) *string { return &v.Name }),
				textField("email", "Email", func(v *models.Vendor) *string { return &v.Email }),
				textField("phone", "Telepon", func(v *models.Vendor) *string { return &v.Phone }),
				textField("address", "Alamat", func(v *models.Vendor) *string { return &v.Address }),
				textField("website", "Website", func(v *models.Vendor) *string { return &v.Website }),
			}}
		},
		audit: func(v models.Vendor) models.Audit { return v.Audit },
	}
}

func userDef() resourceDef[models.User] {
	return resourceDef[models.User]{
		name:    "users",
		res:     func(c *services.Catalog) services.Resource[models.User] { return c.Users },
		sortKey: "created_at",
		cols: []column[models.User]{
			{"ID", "id", func(u models.User) string { return itoa(u.ID) }},
			{"Username", "username", func(u models.User) string { return u.Username }},
			{"Nama", "full_name", func(u models.User) string { return u.FullName }},
			{"Email", "email", func(u models.User) string { return u.Email }},
			{"Role", "", func(u models.User) string { return u.RoleName }},
			{"Aktif", "", func(u models.User) string {
				if u.IsActive {
					return "ya"
				}
				return "tidak"
			}},
		},
		form: func(a *App) formHooks[models.User] {
			return formHooks[models.User]{fields: []field[models.User]{
				textField("username", "Username", func(u *models.User) *string { return &u.Username }),
				textField("full_name", "Nama lengkap", func(u *models.User) *string { return &u.FullName }),
				textField("email", "Email", func(u *models.User) *string { return &u.Email }),
				textField("phone", "Telepon", func(u *models.User) *string { return &u.Phone }),
				refField("role_id", "Role", func(u *models.User) *int64 { return &u.RoleID },
					lookup(a.catalog.Roles, func(r models.Role) (int64, string) { return r.ID, r.Name })),
				textField("password", "Password (kosongkan jika tidak diubah)", func(u *models.User) *string { return &u.Password }),
				boolField("is_active", "Aktif", func(u *models.User) *bool { return &u.IsActive }),
			}, check: func(u models.User) map[string]string {
				if u.ID == 0 && u.Password == "" {
					return map[string]string{"password": forms.MsgRequired}
				}
				return nil
			}}
		},
		audit:    func(u models.User) models.Audit { return u.Audit },
		newDraft: func() models.User { return models.User{IsActive: true} },
	}
}

func roleDef() resourceDef[models.Role] {
	return resourceDef[models.Role]{
		name:    "roles",
		res:     func(c *services.Catalog) services.Resource[models.Role] { return c.Roles },
		sortKey: "name",
		cols: []column[models.Role]{
			{"ID", "id", func(r models.Role) string { return itoa(r.ID) }},
			{"Nama", "name", func(r models.Role) string { return r.Name }},
		},
		form: func(*App) formHooks[models.Role] {
			return formHooks[models.Role]{fields: []field[models.Role]{
				textField("name", "Nama", func(r *models.Role) *string { return &r.Name }),
			}}
		},
	}
}

// named covers the lookup tables that only carry a name and a description.
func named[T any](name string, res func(*services.Catalog) services.Resource[T],
	id func(*T) *int64, title func(*T) *string, desc func(*T) *string, audit func(T) models.Audit,
	extra ...field[T]) resourceDef[T] {
	return resourceDef[T]{
		name:    name,
		res:     res,
		sortKey: "name",
		cols: []column[T]{
			{"ID", "id", func(t T) string { return itoa(*id(&t)) }},
			{"Nama", "name", func(t T) string { return *title(&t) }},
			{"Keterangan", "", func(t T) string { return *desc(&t) }},
		},
		form: func(*App) formHooks[T] {
			fields := []field[T]{
				textField("name", "Nama", title),
				textField("description", "Keterangan", desc),
			}
			return formHooks[T]{fields: append(fields, extra...)}
		},
		audit: audit,
	}
}

func clientTypeDef() resourceDef[models.ClientType] {
	return named("client_types",
		func(c *services.Catalog) services.Resource[models.ClientType] { return c.ClientTypes },
		func(t *models.ClientType) *int64 { return &t.ID },
		func(t *models.ClientType) *string { return &t.Name },
		func(t *models.ClientType) *string { return &t.Description },
		func(t models.ClientType) models.Audit { return t.Audit })
}

func clientStatusDef() resourceDef[models.ClientStatus] {
	return named("client_statuses",
		func(c *services.Catalog) services.Resource[models.ClientStatus] { return c.ClientStatuses },
		func(t *models.ClientStatus) *int64 { return &t.ID },
		func(t *models.ClientStatus) *string { return &t.Name },
		func(t *models.ClientStatus) *string { return &t.Description },
		func(t models.ClientStatus) models.Audit { return t.Audit })
}

func serviceTypeDef() resourceDef[models.ServiceType] {
	s := named("service_types",
		func(c *services.Catalog) services.Resource[models.ServiceType] { return c.ServiceTypes },
		func(t *models.ServiceType) *int64 { return &t.ID },
		func(t *models.ServiceType) *string { return &t.Name },
		func(t *models.ServiceType) *string { return &t.Description },
		func(t models.ServiceType) models.Audit { return t.Audit },
		boolField("requires_vendor", "Butuh vendor", func(t *models.ServiceType) *bool { return &t.RequiresVendor }))
	s.cols = append(s.cols, column[models.ServiceType]{"Butuh vendor", "", func(t models.ServiceType) string {
		if t.RequiresVendor {
			return "ya"
		}
		return "tidak"
	}})
	return s
}

func serviceCategoryDef() resourceDef[models.ServiceCategory] {
	return named("service_categories",
		func(c *services.Catalog) services.Resource[models.ServiceCategory] { return c.ServiceCategories },
		func(t *models.ServiceCategory) *int64 { return &t.ID },
		func(t *models.ServiceCategory) *string { return &t.Name },
		func(t *models.ServiceCategory) *string { return &t.Description },
		func(t models.ServiceCategory) models.Audit { return t.Audit })
}

func waLogDef() resourceDef[models.WALog] {
	return resourceDef[models.WALog]{
		name:    "walog",
		res:     func(c *services.Catalog) services.Resource[models.WALog] { return c.WALogs },
		sortKey: "sent_at",
		cols: []column[models.WALog]{
			{"ID", "id", func(l models.WALog) string { return itoa(l.ID) }},
			{"Layanan", "service_id", func(l models.WALog) string { return itoa(l.ServiceID) }},
			{"Klien", "", func(l models.WALog) string { return l.ClientName }},
			{"Telepon", "", func(l models.WALog) string { return l.Phone }},
			{"Status", "status", func(l models.WALog) string { return l.Status }},
			{"Terkirim", "sent_at", func(l models.WALog) string { return l.SentAt }},
		},
	}
}
