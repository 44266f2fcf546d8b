package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/conf"
)

func setupTestServer(t *testing.T, status int, body string) (*httptest.Server, *Data) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/data.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	src := NewHTTPSource(resty.NewWithClient(server.Client()), "trends-dashboard-test")
	return server, NewDataWithSource(src)
}

func newRepo(t *testing.T, d *Data, baseURL string) *snapshotRepo {
	r, err := NewSnapshotRepo(d, &conf.Snapshot{BaseUrl: baseURL}, log.DefaultLogger)
	require.NoError(t, err)
	return r.(*snapshotRepo)
}

func TestSnapshotRepo_Load(t *testing.T) {
	server, d := setupTestServer(t, http.StatusOK, sampleSnapshot)
	defer server.Close()

	r := newRepo(t, d, server.URL+"/dashboard/index.html")
	assert.Equal(t, server.URL+"/dashboard/data.json", r.Location())
	assert.Empty(t, r.ServingWarning())

	snap, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Trends, 3)
}

func TestSnapshotRepo_LoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{name: "not found", status: http.StatusNotFound, body: "missing", check: IsHTTPStatusError},
		{name: "server error", status: http.StatusInternalServerError, body: "{}", check: IsHTTPStatusError},
		{name: "garbage", status: http.StatusOK, body: "not json", check: IsParseError},
		{name: "no trends", status: http.StatusOK, body: `{"insights": []}`, check: IsSchemaError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, d := setupTestServer(t, tt.status, tt.body)
			defer server.Close()

			snap, err := newRepo(t, d, server.URL+"/dashboard/").Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, snap)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestSnapshotRepo_HTTPStatusMetadata(t *testing.T) {
	server, d := setupTestServer(t, http.StatusNotFound, "")
	defer server.Close()

	_, err := newRepo(t, d, server.URL+"/dashboard/").Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "404", errors.FromError(err).Metadata["status"])
	assert.Equal(t, 502, errors.Code(err))
}

func TestSnapshotRepo_TransportError(t *testing.T) {
	server, d := setupTestServer(t, http.StatusOK, sampleSnapshot)
	base := server.URL + "/dashboard/"
	server.Close()

	_, err := newRepo(t, d, base).Load(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransportError(err), "unexpected error: %v", err)
}

func TestSnapshotRepo_LocalDiskContext(t *testing.T) {
	d := NewDataWithSource(NewHTTPSource(resty.New(), ""))
	r := newRepo(t, d, "file:///home/user/web/index.html")

	assert.Equal(t, "file:///home/user/web/data.json", r.Location())
	assert.Equal(t, LocalDiskWarningText, r.ServingWarning())

	_, err := r.Load(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransportError(err), "unexpected error: %v", err)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o644))

	body, err := FileSource{}.Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot, string(body))

	body, err = FileSource{}.Fetch(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.NotEmpty(t, body)

	_, err = FileSource{}.Fetch(context.Background(), filepath.Join(dir, "missing.json"))
	assert.True(t, IsTransportError(err))
}

func TestFileSource_PlainPathCharacters(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a#b.json", "snap?v=1.json", "100%.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o644))

			location, err := ResolveLocation("", path)
			require.NoError(t, err)
			assert.Equal(t, path, location)

			body, err := FileSource{}.Fetch(context.Background(), location)
			require.NoError(t, err)
			assert.Equal(t, sampleSnapshot, string(body))
		})
	}
}

func TestThrottledSource_Cancelled(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(0.001), 1)
	require.True(t, limiter.Allow())

	src := NewThrottledSource(FileSource{}, limiter)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Fetch(ctx, "data.json")
	assert.True(t, IsTransportError(err))
}

func TestResolveLocation(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"", "", "data.json"},
		{"", "dir/a#b.json", "dir/a#b.json"},
		{"http://127.0.0.1:8000", "", "http://127.0.0.1:8000/data.json"},
		{"http://127.0.0.1:8000/web/", "data.json", "http://127.0.0.1:8000/web/data.json"},
		{"https://example.com/web/index.html", "/snap/latest.json", "https://example.com/snap/latest.json"},
		{"https://example.com/web/", "https://cdn.example.com/data.json", "https://cdn.example.com/data.json"},
	}
	for _, tt := range tests {
		got, err := ResolveLocation(tt.base, tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
