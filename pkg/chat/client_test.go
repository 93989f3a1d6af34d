package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserInfoServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users.info", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_UserDisplayName(t *testing.T) {
	srv := newUserInfoServer(t,
		`{"ok":true,"user":{"id":"U1","name":"adoe","real_name":"Alice Doe","profile":{"display_name":"alice"}}}`)
	client := NewClientWithAPIURL("xoxb-test", srv.URL+"/")

	name, err := client.UserDisplayName(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestClient_UserDisplayName_FallsBackToRealName(t *testing.T) {
	srv := newUserInfoServer(t,
		`{"ok":true,"user":{"id":"U1","name":"adoe","real_name":"Alice Doe","profile":{"display_name":""}}}`)
	client := NewClientWithAPIURL("xoxb-test", srv.URL+"/")

	name, err := client.UserDisplayName(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", name)
}

func TestClient_UserDisplayName_APIError(t *testing.T) {
	srv := newUserInfoServer(t, `{"ok":false,"error":"user_not_found"}`)
	client := NewClientWithAPIURL("xoxb-test", srv.URL+"/")

	_, err := client.UserDisplayName(context.Background(), "U404")
	assert.Error(t, err)
}

func TestClient_UserDisplayName_NilClient(t *testing.T) {
	var client *Client
	_, err := client.UserDisplayName(context.Background(), "U1")
	assert.Error(t, err)
}
