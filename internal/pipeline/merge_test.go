package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadWriteTableRoundTrip(t *testing.T) {
	path := writeCSV(t, "in.csv", "product_id,title\np1,\"Sách, có dấu phẩy\"\np2,Sách thường\n")

	table, err := ReadTable(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Sách, có dấu phẩy", table.Rows[0]["title"])

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteTable(out, table))

	reread, err := ReadTable(out)
	require.NoError(t, err)
	assert.Equal(t, table.Columns, reread.Columns)
	assert.Equal(t, table.Rows, reread.Rows)
}

func TestMergeTables(t *testing.T) {
	a := writeCSV(t, "a.csv", "product_id,summary\np1,một\n")
	b := writeCSV(t, "b.csv", "product_id,summary\np2,hai\np3,ba\n")

	merged, err := MergeTables([]string{a, b})
	require.NoError(t, err)
	assert.Len(t, merged.Rows, 3)
	assert.Equal(t, []string{"product_id", "summary"}, merged.Columns)

	_, err = MergeTables(nil)
	assert.Error(t, err)
}

func TestJoinCatalog(t *testing.T) {
	books := &Table{
		Columns: []string{"product_id", "title"},
		Rows: []map[string]string{
			{"product_id": "p1", "title": "Một"},
			{"product_id": "p2", "title": "Hai"},
		},
	}
	summaries := &Table{
		Columns: []string{"product_id", "summary"},
		Rows: []map[string]string{
			{"product_id": "p1", "summary": "tóm tắt một"},
		},
	}
	comments := &Table{
		Columns: []string{"product_id", "content"},
		Rows: []map[string]string{
			{"product_id": "p2", "content": "hay lắm"},
			{"product_id": "p2", "content": "đáng đọc"},
		},
	}

	joined := JoinCatalog(books, summaries, comments)

	assert.Contains(t, joined.Columns, "summary")
	assert.Contains(t, joined.Columns, "content")
	assert.Equal(t, "tóm tắt một", joined.Rows[0]["summary"])
	assert.Equal(t, "", joined.Rows[0]["content"])
	assert.Equal(t, "hay lắm đáng đọc", joined.Rows[1]["content"])
}

func TestJoinCatalogWithoutOptionalTables(t *testing.T) {
	books := &Table{
		Columns: []string{"product_id", "title"},
		Rows:    []map[string]string{{"product_id": "p1", "title": "Một"}},
	}

	joined := JoinCatalog(books, nil, nil)
	assert.Contains(t, joined.Columns, "summary")
	assert.Equal(t, "", joined.Rows[0]["summary"])
}

func TestStripHTML(t *testing.T) {
	text := StripHTML("<div><p>Cuốn sách <b>hay</b>.</p><p>Nên đọc.</p></div>")
	assert.Contains(t, text, "Cuốn sách")
	assert.Contains(t, text, "Nên đọc.")
	assert.NotContains(t, text, "<p>")

	assert.Equal(t, "chỉ là chữ", StripHTML("chỉ là chữ"))
}
