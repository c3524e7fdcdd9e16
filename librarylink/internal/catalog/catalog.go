package catalog

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/errs"
	"github.com/Astemirdum/library-link/librarylink/internal/ledger"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/pkg/breaker"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Source is a file path or an http(s) URL of the dataset.
	Source  string        `envconfig:"CATALOG_SOURCE" default:"data/library-books.json"`
	Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
	Breaker breaker.Config
}

// Source yields the full list of library holdings.
type Source interface {
	Books(ctx context.Context) ([]model.CatalogBook, error)
}

// Catalog answers whether the library holds a book. The dataset is read
// on every lookup, nothing is cached.
type Catalog struct {
	source Source
	log    *zap.Logger
}

func New(source Source, log *zap.Logger) *Catalog {
	return &Catalog{
		source: source,
		log:    log.Named("catalog"),
	}
}

// NewSource picks a file or HTTP source from cfg.Source.
func NewSource(cfg Config) Source {
	if strings.HasPrefix(cfg.Source, "http://") || strings.HasPrefix(cfg.Source, "https://") {
		return NewHTTPSource(cfg.Source, &http.Client{Timeout: cfg.Timeout}, breaker.New(cfg.Breaker))
	}
	return FileSource(cfg.Source)
}

// Find looks id up in the dataset. A source failure is reported as
// errs.ErrCatalogUnavailable.
func (c *Catalog) Find(ctx context.Context, id model.BookIdentity) (model.CatalogBook, bool, error) {
	books, err := c.source.Books(ctx)
	if err != nil {
		c.log.Error("load catalog", zap.Error(err))
		return model.CatalogBook{}, false, errors.Wrap(errs.ErrCatalogUnavailable, err.Error())
	}
	book, ok := Match(books, id)
	return book, ok, nil
}

// Match tries every holding by ISBN before falling back to titles. The
// first hit in dataset order wins.
func Match(books []model.CatalogBook, id model.BookIdentity) (model.CatalogBook, bool) {
	if id.ISBN != "" {
		for _, b := range books {
			if ledger.SameISBN(b.ISBN, id.ISBN) {
				return b, true
			}
		}
	}
	if id.Title != "" {
		for _, b := range books {
			if ledger.SameTitle(b.Title, id.Title) {
				return b, true
			}
		}
	}
	return model.CatalogBook{}, false
}

// FileSource reads a JSON or YAML dataset, chosen by file extension.
type FileSource string

func (f FileSource) Books(_ context.Context) ([]model.CatalogBook, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, err
	}
	return decode(data, filepath.Ext(string(f)))
}

type HTTPSource struct {
	url    string
	client *http.Client
	cb     breaker.CircuitBreaker
}

func NewHTTPSource(url string, client *http.Client, cb breaker.CircuitBreaker) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: client,
		cb:     cb,
	}
}

// Books fetches the dataset once per call. While the breaker is open the
// call fails without touching the network.
func (s *HTTPSource) Books(ctx context.Context) ([]model.CatalogBook, error) {
	var books []model.CatalogBook
	err := s.cb.Call(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
		if err != nil {
			return err
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("catalog status %d", resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		ext := filepath.Ext(req.URL.Path)
		if strings.Contains(resp.Header.Get("Content-Type"), "yaml") {
			ext = ".yaml"
		}
		books, err = decode(data, ext)
		return err
	})
	return books, err
}

func decode(data []byte, ext string) ([]model.CatalogBook, error) {
	var c model.Catalog
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(err, "yaml")
		}
	default:
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(err, "json")
		}
	}
	return c.Books, nil
}
