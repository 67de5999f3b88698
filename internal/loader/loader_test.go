package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-palette/pkg/schema"
)

const contractYAML = `
title: Brand
fields:
  - name: primary_color
    role: primary
  - name: secondary_color
    role: secondary
  - name: accent_color
    role: accent
`

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contractYAML), 0o600))

	doc, err := New(schema.LoaderOptions{}).Load(context.Background(), schema.SourceFromFile(path))
	require.NoError(t, err)

	contract, err := doc.Contract(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Brand", contract.Title)
	assert.Len(t, contract.Fields, 3)
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{"brand/contract.yaml": {Data: []byte(contractYAML)}}
	l := New(schema.NewLoaderOptions(schema.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), schema.SourceFromFS("brand/contract.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "brand/contract.yaml", doc.Location())

	_, err = New(schema.LoaderOptions{}).Load(context.Background(), schema.SourceFromFS("brand/contract.yaml"))
	assert.Error(t, err)
}

func TestLoader_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contract.yaml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(contractYAML))
	}))
	defer srv.Close()

	_, err := New(schema.LoaderOptions{}).Load(context.Background(), schema.SourceFromURL(srv.URL+"/contract.yaml"))
	require.Error(t, err, "http must be opt-in")

	l := New(schema.NewLoaderOptions(schema.WithHTTPClient(srv.Client())))
	doc, err := l.Load(context.Background(), schema.SourceFromURL(srv.URL+"/contract.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(doc.Raw()), "primary_color")

	_, err = l.Load(context.Background(), schema.SourceFromURL(srv.URL+"/missing.yaml"))
	assert.ErrorContains(t, err, "unexpected status")
}

func TestLoader_NilSource(t *testing.T) {
	_, err := New(schema.LoaderOptions{}).Load(context.Background(), nil)
	assert.Error(t, err)
}
