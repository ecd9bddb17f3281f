package records

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-builder/core/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sheet.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("name,productName\nChair,Oak Chair\nDesk,Pine Desk\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("Success", func(t *testing.T) {
		src := NewHTTPSource(srv.URL+"/sheet.csv", "name", 5)
		set, err := src.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Chair", "Desk"}, set.Names())
		assert.Equal(t, SourceHTTP, src.Name())
	})

	t.Run("NotFound", func(t *testing.T) {
		src := NewHTTPSource(srv.URL+"/missing.csv", "name", 5)
		_, err := src.Fetch(context.Background())
		require.Error(t, err)
		assert.True(t, upstream.Is(err))
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("WrongKeyColumn", func(t *testing.T) {
		src := NewHTTPSource(srv.URL+"/sheet.csv", "title", 0)
		_, err := src.Fetch(context.Background())
		assert.True(t, upstream.Is(err))
	})
}
