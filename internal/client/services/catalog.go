package services

import (
	"context"

	"github.com/dmitrijs2005/renewadmin/internal/client/client"
	"github.com/dmitrijs2005/renewadmin/internal/client/listing"
	"github.com/dmitrijs2005/renewadmin/internal/client/models"
)

// lookupLimit is large enough for every lookup table in practice.
const lookupLimit = 100

// Catalog bundles every resource the console manages.
type Catalog struct {
	Clients           Resource[models.Client]
	Services          Resource[models.Service]
	Vendors           Resource[models.Vendor]
	Users             Resource[models.User]
	Roles             Resource[models.Role]
	ClientTypes       Resource[models.ClientType]
	ClientStatuses    Resource[models.ClientStatus]
	ServiceTypes      Resource[models.ServiceType]
	ServiceCategories Resource[models.ServiceCategory]
	WALogs            Resource[models.WALog]
}

func NewCatalog(f client.Fetcher) *Catalog {
	return &Catalog{
		Clients:           NewResource[models.Client](f, PathClients),
		Services:          NewResource[models.Service](f, PathServices),
		Vendors:           NewResource[models.Vendor](f, PathVendors),
		Users:             NewResource[models.User](f, PathUsers),
		Roles:             NewResource[models.Role](f, PathRoles),
		ClientTypes:       NewResource[models.ClientType](f, PathClientTypes),
		ClientStatuses:    NewResource[models.ClientStatus](f, PathClientStatuses),
		ServiceTypes:      NewResource[models.ServiceType](f, PathServiceTypes),
		ServiceCategories: NewResource[models.ServiceCategory](f, PathServiceCategories),
		WALogs:            NewResource[models.WALog](f, PathWALogs),
	}
}

// Lookup loads a whole lookup table for a picker, sorted by name.
func Lookup[T any](ctx context.Context, r Resource[T]) ([]T, error) {
	q := listing.NewQuery(lookupLimit, "name")
	q.SortDirection = listing.Ascending
	return r.List(ctx, q)
}

// VendorOptions returns the vendors to choose from for a service of the
// given type. Types that do not require a vendor yield nil without a
// vendor request.
func (c *Catalog) VendorOptions(ctx context.Context, serviceTypeID int64) (*models.ServiceType, []models.Vendor, error) {
	st, err := c.ServiceTypes.Get(ctx, serviceTypeID)
	if err != nil {
		return nil, nil, err
	}
	if !st.RequiresVendor {
		return st, nil, nil
	}
	vendors, err := Lookup(ctx, c.Vendors)
	if err != nil {
		return st, nil, err
	}
	return st, vendors, nil
}
