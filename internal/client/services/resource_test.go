package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/renewadmin/internal/client/client"
	"github.com/dmitrijs2005/renewadmin/internal/client/listing"
	"github.com/dmitrijs2005/renewadmin/internal/client/models"
	"github.com/dmitrijs2005/renewadmin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_CRUDPaths(t *testing.T) {
	ctx := context.Background()
	f := newFakeFetcher()
	f.data["/api/clients"] = `{"data":[{"id":1,"name":"PT A"},{"id":2,"name":"PT B"}],"pagination":{"page":1,"limit":10}}`
	f.data["/api/clients/1"] = `{"id":1,"name":"PT A","created_by":"admin"}`

	r := NewResource[models.Client](f, PathClients)

	rows, err := r.List(ctx, listing.NewQuery(10, "name"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "PT B", rows[1].Name)
	assert.Equal(t, "1", f.requests[0].Query.Get("page"))
	assert.Equal(t, "name", f.requests[0].Query.Get("order_by"))

	c, err := r.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", c.CreatedBy)

	require.NoError(t, r.Create(ctx, models.Client{Name: "PT C"}))
	require.NoError(t, r.Update(ctx, 1, *c))
	require.NoError(t, r.Delete(ctx, 1))

	assert.Equal(t, []string{
		"GET /api/clients",
		"GET /api/clients/1",
		"POST /api/clients",
		"PUT /api/clients/1",
		"DELETE /api/clients/1",
	}, f.paths())
	assert.Equal(t, models.Client{Name: "PT C"}, f.requests[2].Body)
}

func TestResource_EmptyListIsNotNil(t *testing.T) {
	f := newFakeFetcher()
	f.data["/api/vendors"] = `{"data":null,"pagination":{}}`

	rows, err := NewResource[models.Vendor](f, PathVendors).List(context.Background(), listing.NewQuery(10, "id"))
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestResource_ErrorsKeepCause(t *testing.T) {
	ctx := context.Background()
	f := newFakeFetcher()
	notFound := &client.APIError{Status: http.StatusNotFound, Message: client.MsgNotFound}
	f.errs["/api/users/9"] = notFound

	_, err := NewResource[models.User](f, PathUsers).Get(ctx, 9)
	require.ErrorIs(t, err, client.ErrNotFound)
	assert.Equal(t, client.MsgNotFound, client.UserMessage(err))
}

func TestResource_OverHTTP(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client_statuses", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code":   200,
			"status": "OK",
			"data": map[string]any{
				"data":       []map[string]any{{"id": 1, "name": "Aktif"}},
				"pagination": map[string]any{"page": 1, "limit": 10, "order_by": "name", "sort_by": "asc", "search": "ak", "offset": 0},
			},
		})
	}))
	defer srv.Close()

	hc := client.NewHTTPClient(srv.URL, "key", nil, 5*time.Second, logging.NewNopLogger())
	r := NewCatalog(hc).ClientStatuses

	q := listing.NewQuery(10, "name")
	q.SortDirection = listing.Ascending
	q.Search = "ak"
	rows, err := r.List(context.Background(), q)
	require.NoError(t, err)
	require.Equal(t, []models.ClientStatus{{ID: 1, Name: "Aktif"}}, rows)
	assert.Equal(t, "limit=10&order_by=name&page=1&search=ak&sort_by=asc", gotQuery)
}

func TestCatalog_VendorOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("vendor not required skips the vendor request", func(t *testing.T) {
		f := newFakeFetcher()
		f.data["/api/service_types/1"] = `{"id":1,"name":"Domain","requires_vendor":false}`

		st, vendors, err := NewCatalog(f).VendorOptions(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Domain", st.Name)
		assert.Nil(t, vendors)
		assert.Equal(t, []string{"GET /api/service_types/1"}, f.paths())
	})

	t.Run("vendor required loads vendors", func(t *testing.T) {
		f := newFakeFetcher()
		f.data["/api/service_types/2"] = `{"id":2,"name":"Hosting","requires_vendor":true}`
		f.data["/api/vendors"] = `{"data":[{"id":5,"name":"Niagahoster"}]}`

		_, vendors, err := NewCatalog(f).VendorOptions(ctx, 2)
		require.NoError(t, err)
		require.Len(t, vendors, 1)
		assert.Equal(t, []string{"GET /api/service_types/2", "GET /api/vendors"}, f.paths())
		assert.Equal(t, "100", f.requests[1].Query.Get("limit"))
		assert.Equal(t, "asc", f.requests[1].Query.Get("sort_by"))
	})

	t.Run("service type error", func(t *testing.T) {
		f := newFakeFetcher()
		boom := errors.New("down")
		f.errs["/api/service_types/3"] = boom

		_, _, err := NewCatalog(f).VendorOptions(ctx, 3)
		require.ErrorIs(t, err, boom)
	})
}
