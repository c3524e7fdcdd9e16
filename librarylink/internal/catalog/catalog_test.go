package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/errs"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/pkg/breaker"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCatalog_Find(t *testing.T) {
	t.Parallel()
	c := New(FileSource("testdata/books.json"), zap.NewNop())

	tests := []struct {
		name      string
		id        model.BookIdentity
		wantFound bool
		wantTitle string
	}{
		{
			name:      "isbn without dashes",
			id:        model.BookIdentity{ISBN: "9780132350884"},
			wantFound: true,
			wantTitle: "Clean Code: A Handbook of Agile Software Craftsmanship",
		},
		{
			name:      "title substring ignoring case",
			id:        model.BookIdentity{Title: "  clean code "},
			wantFound: true,
			wantTitle: "Clean Code: A Handbook of Agile Software Craftsmanship",
		},
		{
			name:      "isbn wins over title",
			id:        model.BookIdentity{ISBN: "978-0-201-63361-0", Title: "Clean Code"},
			wantFound: true,
			wantTitle: "Design Patterns",
		},
		{
			name:      "page title containing the catalog title",
			id:        model.BookIdentity{Title: "Design Patterns (Hardcover, 1994)"},
			wantFound: true,
			wantTitle: "Design Patterns",
		},
		{
			name: "unknown book",
			id:   model.BookIdentity{ISBN: "978-1-00-000000-0", Title: "Nothing Like It"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			book, found, err := c.Find(context.Background(), tt.id)
			require.NoError(t, err)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantTitle, book.Title)
		})
	}
}

func TestFileSource_YAML(t *testing.T) {
	t.Parallel()
	books, err := FileSource("testdata/books.yaml").Books(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, model.CatalogBook{
		ISBN:            "978-0-13-475759-9",
		Title:           "Refactoring",
		Author:          "Martin Fowler",
		Price:           47.5,
		CopiesAvailable: 1,
		Location:        "QA76.76 .R42 F69 2018",
	}, books[0])
}

func TestCatalog_Unavailable(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"books": [`), 0o600))

	for _, src := range []Source{
		FileSource(filepath.Join(dir, "missing.json")),
		FileSource(broken),
	} {
		_, found, err := New(src, zap.NewNop()).Find(context.Background(), model.BookIdentity{Title: "Refactoring"})
		require.ErrorIs(t, err, errs.ErrCatalogUnavailable)
		require.False(t, found)
	}
}

func TestHTTPSource(t *testing.T) {
	t.Parallel()
	data, err := os.ReadFile("testdata/books.json")
	require.NoError(t, err)

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/library-books.json" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	defer srv.Close()
	client := srv.Client()
	defer client.CloseIdleConnections()

	cfg := breaker.Config{Window: 2, FailureRatio: 0.5, Cooldown: time.Minute, Recovery: 1}

	t.Run("ok", func(t *testing.T) {
		src := NewHTTPSource(srv.URL+"/library-books.json", client, breaker.New(cfg))
		book, found, err := New(src, zap.NewNop()).Find(context.Background(), model.BookIdentity{ISBN: "978-0-201-63361-0"})
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, 0, book.CopiesAvailable)
	})

	t.Run("breaker opens", func(t *testing.T) {
		cb := breaker.New(cfg)
		src := NewHTTPSource(srv.URL+"/down", client, cb)
		before := hits.Load()

		_, err := src.Books(context.Background())
		require.EqualError(t, err, "catalog status 500")
		require.Equal(t, breaker.Open, cb.Status())

		_, err = src.Books(context.Background())
		require.ErrorIs(t, err, breaker.ErrOpen)
		require.Equal(t, before+1, hits.Load())
	})
}
