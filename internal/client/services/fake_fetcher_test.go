package services

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/dmitrijs2005/renewadmin/internal/client/client"
)

// fakeFetcher records requests and answers from canned JSON keyed by path.
type fakeFetcher struct {
	requests []client.Request
	data     map[string]string
	errs     map[string]error

	file        *client.File
	downloadErr error
	lastQuery   url.Values

	loginToken string
	loginErr   error
	loginUser  string
	loginPass  string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{data: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeFetcher) Do(ctx context.Context, r client.Request, out any) error {
	f.requests = append(f.requests, r)
	if err := f.errs[r.Path]; err != nil {
		return err
	}
	if raw, ok := f.data[r.Path]; ok && out != nil {
		return json.Unmarshal([]byte(raw), out)
	}
	return nil
}

func (f *fakeFetcher) Download(ctx context.Context, path string, query url.Values) (*client.File, error) {
	f.requests = append(f.requests, client.Request{Method: "GET", Path: path, Query: query})
	f.lastQuery = query
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return f.file, nil
}

func (f *fakeFetcher) Login(ctx context.Context, username, password string) (string, error) {
	f.loginUser, f.loginPass = username, password
	return f.loginToken, f.loginErr
}

func (f *fakeFetcher) paths() []string {
	out := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r.Method+" "+r.Path)
	}
	return out
}

var _ client.Fetcher = (*fakeFetcher)(nil)
