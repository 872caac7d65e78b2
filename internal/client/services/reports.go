package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/renewadmin/internal/client/archive"
	"github.com/dmitrijs2005/renewadmin/internal/client/client"
	"github.com/dmitrijs2005/renewadmin/internal/client/models"
)

// ReportService previews and downloads the services report.
type ReportService interface {
	Preview(ctx context.Context, f models.ReportFilter) (*models.ReportPreview, error)
	// DownloadExcel stores the spreadsheet in sink and returns its location.
	DownloadExcel(ctx context.Context, f models.ReportFilter, sink archive.Sink) (string, error)
}

type reportService struct {
	fetcher client.Fetcher
}

func NewReportService(fetcher client.Fetcher) ReportService {
	return &reportService{fetcher: fetcher}
}

func reportQuery(f models.ReportFilter) url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	setID := func(k string, id int64) {
		if id > 0 {
			v.Set(k, strconv.FormatInt(id, 10))
		}
	}
	set("start_date", f.StartDate)
	set("end_date", f.EndDate)
	setID("client_id", f.ClientID)
	setID("service_type_id", f.ServiceTypeID)
	setID("service_category_id", f.ServiceCategoryID)
	set("status", f.Status)
	return v
}

func (s *reportService) Preview(ctx context.Context, f models.ReportFilter) (*models.ReportPreview, error) {
	var out models.ReportPreview
	err := s.fetcher.Do(ctx, client.Request{Method: http.MethodGet, Path: PathReportPreview, Query: reportQuery(f)}, &out)
	if err != nil {
		return nil, fmt.Errorf("report preview: %w", err)
	}
	return &out, nil
}

func (s *reportService) DownloadExcel(ctx context.Context, f models.ReportFilter, sink archive.Sink) (string, error) {
	file, err := s.fetcher.Download(ctx, PathReportExcel, reportQuery(f))
	if err != nil {
		return "", fmt.Errorf("report download: %w", err)
	}

	loc, err := sink.Put(ctx, file.Name, file.ContentType, file.Data)
	if err != nil {
		return "", fmt.Errorf("report store: %w", err)
	}
	return loc, nil
}
