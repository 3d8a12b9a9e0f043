package uploader

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadReturnsPublicURL(t *testing.T) {
	var gotPath, gotContentType, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u := NewStorageUploader(srv.URL, "warehouse", "storage-key")
	url, err := u.Upload(context.Background(), File{
		Name:        "design.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotPath, "/object/warehouse/"))
	assert.True(t, strings.HasSuffix(gotPath, ".png"), "object keeps the original extension")
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, "Bearer storage-key", gotAuth)
	assert.Equal(t, []byte("png-bytes"), gotBody)
	assert.Equal(t, srv.URL+"/object/public/warehouse/"+strings.TrimPrefix(gotPath, "/object/warehouse/"), url)
}

func TestUploadRejectsOversizeFileBeforeNetworkCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	u := NewStorageUploader(srv.URL, "warehouse", "")
	_, err := u.Upload(context.Background(), File{
		Name: "huge.png",
		Data: bytes.Repeat([]byte{0}, MaxFileSize+1),
	})

	var uerr *UploadError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, uerr.Message, "10MB")
	assert.Zero(t, calls)
}

func TestUploadSurfacesStorageRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	u := NewStorageUploader(srv.URL, "warehouse", "")
	_, err := u.Upload(context.Background(), File{Name: "a.jpg", Data: []byte{1}})

	var uerr *UploadError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, uerr.Message, "403")
}

func TestUploadSurfacesTransportFailure(t *testing.T) {
	u := NewStorageUploader("http://localhost:1", "warehouse", "")
	_, err := u.Upload(context.Background(), File{Name: "a.jpg", Data: []byte{1}})

	var uerr *UploadError
	require.ErrorAs(t, err, &uerr)
	assert.NotNil(t, uerr.Unwrap())
}

func TestObjectNamesAvoidCollisions(t *testing.T) {
	a := objectName("design.png")
	b := objectName("design.png")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.True(t, strings.HasSuffix(b, ".png"))
}

func TestObjectNameWithoutExtension(t *testing.T) {
	assert.False(t, strings.Contains(objectName("noext"), "."))
}
