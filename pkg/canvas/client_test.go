package canvas

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/go-canvas/pkg/formenc"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.AccessToken = "test-token"
	cfg.RetryDelay = time.Millisecond

	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client, srv
}

func TestClient_Get(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/courses/42", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 42, "name": "Biology 101"}`))
		}))

	var course struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), "courses/42", nil, &course)

	require.NoError(t, err)
	assert.Equal(t, int64(42), course.ID)
	assert.Equal(t, "Biology 101", course.Name)
}

func TestClient_PostForm(t *testing.T) {
	var gotNames []string
	var gotValues map[string][]string
	client, _ := testClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotValues = r.MultipartForm.Value
			// Capture one repeated name to verify the append form survives
			// transport intact.
			gotNames = r.MultipartForm.Value["appointment_group[new_appointments][0][]"]
			w.Write([]byte(`{"id": 7}`))
		}))

	fields := []formenc.Field{
		{Name: "appointment_group[title]", Contents: "Office Hours"},
		{Name: "appointment_group[new_appointments][0][]", Contents: "2024-01-01T10:00:00Z"},
		{Name: "appointment_group[new_appointments][0][]", Contents: "2024-01-01T11:00:00Z"},
	}

	var out struct {
		ID int64 `json:"id"`
	}
	err := client.PostForm(context.Background(), "appointment_groups", fields, &out)

	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, []string{"Office Hours"}, gotValues["appointment_group[title]"])
	assert.Equal(t,
		[]string{"2024-01-01T10:00:00Z", "2024-01-01T11:00:00Z"}, gotNames)
}

func TestClient_APIError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"errors": [{"message": "The specified resource does not exist."}]}`))
		}))

	err := client.Get(context.Background(), "courses/9999", nil, nil)

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "The specified resource does not exist.")
}

func TestClient_FieldErrorBody(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errors": {"name": [{"message": "blank"}]}}`))
		}))

	err := client.Get(context.Background(), "accounts/1", nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name: blank")
	assert.False(t, IsNotFound(err))
}

func TestClient_RetriesServerErrors(t *testing.T) {
	attempts := 0
	client, _ := testClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"ok": true}`))
		}))

	err := client.Get(context.Background(), "users/self", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	client, _ := testClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors": [{"message": "Invalid access token."}]}`))
		}))

	err := client.Get(context.Background(), "users/self", nil, nil)

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, 1, attempts)
}

func TestNewClient_ZeroMaxRetriesDisablesRetries(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusBadGateway)
		}))
	t.Cleanup(srv.Close)

	cfg := &Config{
		BaseURL:     srv.URL,
		AccessToken: "tok",
		MaxRetries:  0,
	}
	client, err := NewClient(cfg)
	require.NoError(t, err)

	err = client.Get(context.Background(), "users/self", nil, nil)

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	// The caller's config keeps its zero values.
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Nil(t, cfg.Logger)
}

func TestNewClient_ValidatesConfig(t *testing.T) {
	t.Run("missing base URL", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AccessToken = "tok"
		_, err := NewClient(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base_url is required")
	})

	t.Run("missing credentials", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.BaseURL = "https://canvas.example.edu"
		_, err := NewClient(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access_token")
	})

	t.Run("bad scheme", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.BaseURL = "ftp://canvas.example.edu"
		cfg.AccessToken = "tok"
		_, err := NewClient(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http or https")
	})
}
