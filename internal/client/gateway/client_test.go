package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	method      string
	path        string
	contentType string
	accept      string
	body        []byte
}

func newCapturingServer(t *testing.T, respond string) (*httptest.Server, *capture) {
	t.Helper()
	cap := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.method = r.Method
		cap.path = r.URL.Path
		cap.contentType = r.Header.Get("Content-Type")
		cap.accept = r.Header.Get("Accept")
		cap.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(respond))
	}))
	t.Cleanup(srv.Close)
	return srv, cap
}

func TestPost_AttachesJSONBodyAndHeaders(t *testing.T) {
	srv, cap := newCapturingServer(t, `{"ok":true}`)
	c := New(srv.URL)

	var out map[string]any
	err := c.Post(context.Background(), "/todo", map[string]any{"todoName": "x", "status": 0}, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, cap.method)
	assert.Equal(t, "/todo", cap.path)
	assert.Equal(t, "application/json", cap.contentType)
	assert.Equal(t, "application/json", cap.accept)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(cap.body, &sent))
	assert.Equal(t, "x", sent["todoName"])
	assert.Equal(t, true, out["ok"])
}

func TestGet_SendsNoBody(t *testing.T) {
	srv, cap := newCapturingServer(t, `[]`)
	c := New(srv.URL)

	var out []any
	err := c.Get(context.Background(), "/todo", &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, cap.method)
	assert.Empty(t, cap.body)
}

func TestDelete_SendsNoBody(t *testing.T) {
	srv, cap := newCapturingServer(t, `{"id":"t1"}`)
	c := New(srv.URL)

	var out map[string]any
	err := c.Delete(context.Background(), "/todo/t1", &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, cap.method)
	assert.Equal(t, "/todo/t1", cap.path)
	assert.Empty(t, cap.body)
	assert.Equal(t, "t1", out["id"])
}

func TestPatchAndPut_AttachBody(t *testing.T) {
	srv, cap := newCapturingServer(t, `{}`)
	c := New(srv.URL)

	var out map[string]any
	require.NoError(t, c.Patch(context.Background(), "/todo/t1", map[string]int{"status": 1}, &out))
	assert.Equal(t, http.MethodPatch, cap.method)
	assert.JSONEq(t, `{"status":1}`, string(cap.body))

	require.NoError(t, c.Put(context.Background(), "/todo/t1", map[string]string{"todoName": "n"}, &out))
	assert.Equal(t, http.MethodPut, cap.method)
	assert.JSONEq(t, `{"todoName":"n"}`, string(cap.body))
}

func TestDo_NonJSONBodyIsAnError(t *testing.T) {
	// a 403/500 with an empty body is not valid JSON, so the operation is
	// rejected without any status-code branching
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL)

	var out map[string]any
	err := c.Patch(context.Background(), "/todo/absent", map[string]int{"status": 1}, &out)
	assert.Error(t, err)
}

func TestDo_TransportFaultPropagates(t *testing.T) {
	c := New("http://127.0.0.1:1")

	var out []any
	err := c.Get(context.Background(), "/todo", &out)
	assert.Error(t, err)
}

func TestDo_NilOutSkipsDecoding(t *testing.T) {
	srv, _ := newCapturingServer(t, `not json at all`)
	c := New(srv.URL)

	err := c.Get(context.Background(), "/health", nil)
	assert.NoError(t, err)
}
