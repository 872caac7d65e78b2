package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/renewadmin/internal/client/listing"
	"github.com/dmitrijs2005/renewadmin/internal/client/models"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"150000", 150000},
		{"100.000", 100000},
		{"Rp 1.500.000", 1500000},
		{"12.5", 12.5},
		{"1,5", 1.5},
		{"100.000,50", 100000.5},
		{"Rp 2.500.000,75", 2500000.75},
	}
	for _, tt := range tests {
		got, err := parseMoney(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"seratus", "1,5,0"} {
		_, err := parseMoney(bad)
		assert.ErrorIs(t, err, errBadValue, bad)
	}
}

func TestBoolField(t *testing.T) {
	f := boolField("discount_enabled", "Diskon", func(s *models.Service) *bool { return &s.DiscountEnabled })

	var s models.Service
	require.NoError(t, f.set(&s, "Ya"))
	assert.True(t, s.DiscountEnabled)
	assert.Equal(t, "ya", f.get(s))

	require.NoError(t, f.set(&s, "tidak"))
	assert.False(t, s.DiscountEnabled)

	assert.ErrorIs(t, f.set(&s, "mungkin"), errBadValue)
}

func TestRefField(t *testing.T) {
	f := refField("client_id", "Klien", func(s *models.Service) *int64 { return &s.ClientID },
		func(context.Context) ([]choice, error) { return []choice{{1, "PT A"}, {2, "PT B"}}, nil })

	var s models.Service
	assert.Equal(t, "", f.get(s))
	require.NoError(t, f.set(&s, "2"))
	assert.Equal(t, "2", f.get(s))
	assert.ErrorIs(t, f.set(&s, "-4"), errBadValue)
	assert.ErrorIs(t, f.set(&s, "dua"), errBadValue)

	show, opts, err := f.choices(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, show)
	assert.Equal(t, "1=PT A, 2=PT B", formatChoices(opts))
}

func TestEnumFieldLowercases(t *testing.T) {
	f := enumField("discount_type", "Jenis diskon", func(s *models.Service) *models.DiscountType { return &s.DiscountType },
		models.DiscountAmount, models.DiscountPercentage)

	assert.True(t, strings.HasSuffix(f.label, "(amount/percentage)"))

	var s models.Service
	require.NoError(t, f.set(&s, "Percentage"))
	assert.Equal(t, models.DiscountPercentage, s.DiscountType)
}

func TestWriteTable(t *testing.T) {
	cols := []column[models.Vendor]{
		{"ID", "id", func(v models.Vendor) string { return itoa(v.ID) }},
		{"Nama", "name", func(v models.Vendor) string { return v.Name }},
		{"Telepon", "", func(v models.Vendor) string { return v.Phone }},
	}
	q := listing.NewQuery(10, "name")
	q.Page = 2
	q.Search = "net"

	var buf bytes.Buffer
	writeTable(&buf, cols, listing.Page[models.Vendor]{
		Query:       q,
		Rows:        []models.Vendor{{ID: 11, Name: "Netindo", Phone: "021-555"}},
		HasPrevious: true,
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Nama v")
	assert.Contains(t, lines[1], "Netindo")
	assert.Equal(t, `Halaman 2 | 10 per halaman | cari "net" | prev`, lines[2])
}

func TestWriteTable_Empty(t *testing.T) {
	cols := []column[models.Vendor]{{"ID", "id", func(v models.Vendor) string { return itoa(v.ID) }}}

	var buf bytes.Buffer
	writeTable(&buf, cols, listing.Page[models.Vendor]{Query: listing.NewQuery(25, "id"), HasNext: false})

	assert.Contains(t, buf.String(), "Tidak ada data")
	assert.Contains(t, buf.String(), "Halaman 1 | 25 per halaman")
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	writeReport(&buf, &models.ReportPreview{
		Rows:       []models.ReportRow{{ServiceID: 3, ServiceName: "Domain", ClientName: "CV Sinar", FinalPrice: 150000, Status: "aktif"}},
		TotalCount: 1,
		TotalPrice: 150000,
	})
	assert.Contains(t, buf.String(), "Domain")
	assert.Contains(t, buf.String(), "Total: 1 layanan, 150000")

	buf.Reset()
	writeReport(&buf, &models.ReportPreview{})
	assert.Equal(t, "Tidak ada data\n", buf.String())
}
