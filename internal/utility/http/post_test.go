package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostFormSendsEncodedBodyAndDefaultHeaders(t *testing.T) {
	var gotContentType, gotAccept, gotAmount string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("accept")
		assert.NoError(t, r.ParseForm())
		gotAmount = r.PostForm.Get("billAmount")
		w.Write([]byte(`[{"BillCode":"abc"}]`))
	}))
	defer srv.Close()

	form := url.Values{}
	form.Set("billAmount", "1250")

	resp, err := NewHttpClient().PostForm(context.Background(), srv.URL, form)
	require.NoError(t, err)

	assert.True(t, resp.Success())
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "1250", gotAmount)
	assert.Equal(t, `[{"BillCode":"abc"}]`, string(resp.Body))
}

func TestPostKeepsNonSuccessStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("[KEY-DID-NOT-EXIST]"))
	}))
	defer srv.Close()

	resp, err := NewHttpClient().PostForm(context.Background(), srv.URL, url.Values{})
	require.NoError(t, err, "non-2xx replies are data, not errors")

	assert.False(t, resp.Success())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "[KEY-DID-NOT-EXIST]", string(resp.Body))
}

func TestWithHeaderOverridesDefault(t *testing.T) {
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
	}))
	defer srv.Close()

	_, err := NewHttpClient().Post(context.Background(), srv.URL, nil,
		WithHeader("Content-Type", "application/json"))
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
}
