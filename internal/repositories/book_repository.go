package repositories

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"caelio/internal/models/book_models"
	"caelio/pkg/utils"
)

type BookRepositoryInterface interface {
	// LoadCatalog returns every parseable catalog row. The slice must be
	// treated as read-only by callers.
	LoadCatalog(ctx context.Context) ([]book_models.Book, error)
}

// defaultCatalogPaths are tried in order when CATALOG_PATH is unset or does
// not resolve.
var defaultCatalogPaths = []string{
	"dataset/books_full_data.csv",
	"books_full_data.csv",
	"../dataset/books_full_data.csv",
	"v2/labeled_books_v2.csv",
}

// CSVBookRepository reads the flat book catalog. With caching enabled the
// file is parsed once and frozen behind the mutex; concurrent readers never
// observe a partially loaded table. Without caching every request re-reads
// the file, matching the original behavior.
type CSVBookRepository struct {
	paths    []string
	useCache bool

	mu     sync.RWMutex
	cached []book_models.Book
	loaded bool
}

func NewCSVBookRepository() BookRepositoryInterface {
	paths := defaultCatalogPaths
	if custom := os.Getenv("CATALOG_PATH"); custom != "" {
		paths = append([]string{custom}, defaultCatalogPaths...)
	}
	return &CSVBookRepository{
		paths:    paths,
		useCache: os.Getenv("CATALOG_CACHE") == "true",
	}
}

func NewCSVBookRepositoryWithPaths(paths []string, useCache bool) *CSVBookRepository {
	return &CSVBookRepository{paths: paths, useCache: useCache}
}

func (r *CSVBookRepository) LoadCatalog(ctx context.Context) ([]book_models.Book, error) {
	if r.useCache {
		r.mu.RLock()
		if r.loaded {
			books := r.cached
			r.mu.RUnlock()
			return books, nil
		}
		r.mu.RUnlock()
	}

	books, err := r.readAny(ctx)
	if err != nil {
		return nil, err
	}

	if r.useCache {
		r.mu.Lock()
		if !r.loaded {
			r.cached = books
			r.loaded = true
		}
		books = r.cached
		r.mu.Unlock()
	}
	return books, nil
}

func (r *CSVBookRepository) readAny(ctx context.Context) ([]book_models.Book, error) {
	for _, path := range r.paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		books, err := r.readFile(ctx, path)
		if err != nil {
			log.Printf("Error reading catalog %s: %v", path, err)
			continue
		}
		return books, nil
	}
	return nil, utils.ErrCatalogUnavailable
}

func (r *CSVBookRepository) readFile(ctx context.Context, path string) ([]book_models.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var books []book_models.Book
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// One malformed row never fails the whole catalog.
			continue
		}
		books = append(books, book_models.Book{
			ProductID:     cell(record, columns, "product_id"),
			Title:         cell(record, columns, "title"),
			Authors:       cell(record, columns, "authors"),
			Category:      cell(record, columns, "category"),
			Summary:       cell(record, columns, "summary"),
			Content:       cell(record, columns, "content"),
			Manufacturer:  cell(record, columns, "manufacturer"),
			CoverLink:     cell(record, columns, "cover_link"),
			OriginalPrice: numericCell(record, columns, "original_price"),
			CurrentPrice:  numericCell(record, columns, "current_price"),
			Quantity:      numericCell(record, columns, "quantity"),
			AvgRating:     numericCell(record, columns, "avg_rating"),
			ReviewCount:   numericCell(record, columns, "n_review"),
			Pages:         numericCell(record, columns, "pages"),
		})
	}
	return books, nil
}

// cell reads a text column, treating absent columns and NaN markers as "".
func cell(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	value := strings.TrimSpace(record[i])
	if strings.EqualFold(value, "nan") {
		return ""
	}
	return value
}

// numericCell reads a numeric column. Empty cells, NaN markers and
// unparseable values all read as missing, never zero.
func numericCell(record []string, columns map[string]int, name string) *float64 {
	raw := cell(record, columns, name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
