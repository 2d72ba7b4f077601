package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caelio/pkg/utils"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalogParsesRows(t *testing.T) {
	path := writeCatalog(t, "books.csv",
		"product_id,title,authors,category,summary,quantity,avg_rating,n_review\n"+
			"p1,Nhà giả kim,Paulo Coelho,Văn học,Một chuyến đi,1200,4.8,250\n"+
			"p2,Sách không tên,,Lịch sử,NaN,,,\n")

	repo := NewCSVBookRepositoryWithPaths([]string{path}, false)
	books, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, "p1", books[0].ProductID)
	assert.Equal(t, "Nhà giả kim", books[0].Title)
	require.NotNil(t, books[0].Quantity)
	assert.Equal(t, 1200.0, *books[0].Quantity)
	require.NotNil(t, books[0].AvgRating)
	assert.Equal(t, 4.8, *books[0].AvgRating)

	// NaN and empty cells read as absent, never zero.
	assert.Equal(t, "", books[1].Summary)
	assert.Nil(t, books[1].Quantity)
	assert.Nil(t, books[1].AvgRating)
	assert.Nil(t, books[1].ReviewCount)
}

func TestLoadCatalogMissingColumns(t *testing.T) {
	path := writeCatalog(t, "books.csv",
		"product_id,title\np1,Chỉ có tiêu đề\n")

	repo := NewCSVBookRepositoryWithPaths([]string{path}, false)
	books, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "", books[0].Category)
	assert.Nil(t, books[0].Pages)
}

func TestLoadCatalogSkipsShortRows(t *testing.T) {
	path := writeCatalog(t, "books.csv",
		"product_id,title,category\np1,Đủ cột,Văn học\np2,Thiếu cột\n")

	repo := NewCSVBookRepositoryWithPaths([]string{path}, false)
	books, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)

	// FieldsPerRecord is relaxed, so the short row still parses with the
	// missing trailing cells reading as empty.
	require.Len(t, books, 2)
	assert.Equal(t, "", books[1].Category)
}

func TestLoadCatalogFallbackPaths(t *testing.T) {
	good := writeCatalog(t, "books.csv", "product_id,title\np1,Sách\n")

	repo := NewCSVBookRepositoryWithPaths([]string{"/nonexistent/a.csv", good}, false)
	books, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestLoadCatalogUnavailable(t *testing.T) {
	repo := NewCSVBookRepositoryWithPaths([]string{"/nonexistent/a.csv"}, false)
	_, err := repo.LoadCatalog(context.Background())
	assert.ErrorIs(t, err, utils.ErrCatalogUnavailable)
}

func TestLoadCatalogCaching(t *testing.T) {
	path := writeCatalog(t, "books.csv", "product_id,title\np1,Sách\n")

	repo := NewCSVBookRepositoryWithPaths([]string{path}, true)
	first, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)

	// A rewrite after the first load is not observed while caching.
	require.NoError(t, os.WriteFile(path, []byte("product_id,title\np2,Khác\n"), 0o644))
	second, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadCatalogCancelledContext(t *testing.T) {
	path := writeCatalog(t, "books.csv", "product_id,title\np1,Sách\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewCSVBookRepositoryWithPaths([]string{path}, false)
	_, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)

	_, err = repo.LoadCatalog(ctx)
	assert.Error(t, err)
}
