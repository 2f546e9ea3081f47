package canvas

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinkHeader(t *testing.T) {
	header := `<https://canvas.example.edu/api/v1/courses?page=2&per_page=10>; rel="next",` +
		`<https://canvas.example.edu/api/v1/courses?page=1&per_page=10>; rel="current",` +
		`<https://canvas.example.edu/api/v1/courses?page=5&per_page=10>; rel="last"`

	links := ParseLinkHeader(header)

	assert.Equal(t, "https://canvas.example.edu/api/v1/courses?page=2&per_page=10", links["next"])
	assert.Equal(t, "https://canvas.example.edu/api/v1/courses?page=5&per_page=10", links["last"])
	assert.NotContains(t, links, "prev")

	assert.Empty(t, ParseLinkHeader(""))
}

func TestPager_WalksAllPages(t *testing.T) {
	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/courses/42/students", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		switch page {
		case "", "1":
			w.Header().Set("Link",
				fmt.Sprintf(`<%s/api/v1/courses/42/students?page=2>; rel="next"`, srvURL))
			w.Write([]byte(`[{"id": 1}, {"id": 2}]`))
		case "2":
			w.Header().Set("Link",
				fmt.Sprintf(`<%s/api/v1/courses/42/students?page=3>; rel="next"`, srvURL))
			w.Write([]byte(`[{"id": 3}]`))
		case "3":
			// No rel="next": final page.
			w.Write([]byte(`[{"id": 4}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	client, srv := testClient(t, mux)
	srvURL = srv.URL

	pager := client.List("courses/42/students", nil)
	rows, err := pager.All(context.Background())

	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.JSONEq(t, `{"id": 1}`, string(rows[0]))
	assert.JSONEq(t, `{"id": 4}`, string(rows[3]))
	assert.False(t, pager.HasMore())
}

func TestPager_NextAfterExhaustion(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": 1}]`))
		}))

	pager := client.List("courses", nil)

	rows, err := pager.Next(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = pager.Next(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rows)
}
