package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFilePostsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/uploads", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"a1","filename":"note.txt","content_type":"text/plain","file_size":5,"url":"/uploads/a1"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	attachment, err := c.UploadFile(context.Background(), "note.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "a1", attachment.ID)
	assert.Equal(t, "/uploads/a1", attachment.URL)
}

func TestGetUserProfileReturnsErrorOnNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.GetUserProfile(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestListServerEmoji(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers/srv1/emoji", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"e1","server_id":"srv1","name":"pepe","image_url":"/e1.png"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	emoji, err := c.ListServerEmoji(context.Background(), "srv1")
	require.NoError(t, err)
	require.Len(t, emoji, 1)
	assert.Equal(t, "pepe", emoji[0].Name)
}
