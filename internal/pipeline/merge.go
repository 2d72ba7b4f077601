package pipeline

import (
	"fmt"
	"log"
	"strings"
)

// MergeTables concatenates part-files that share a schema. The first file's
// column order wins; later files only need to carry the same columns.
func MergeTables(paths []string) (*Table, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files to merge")
	}

	merged, err := ReadTable(paths[0])
	if err != nil {
		return nil, err
	}
	for _, path := range paths[1:] {
		part, err := ReadTable(path)
		if err != nil {
			return nil, err
		}
		merged.Rows = append(merged.Rows, part.Rows...)
	}
	log.Printf("Merged %d files into %d rows", len(paths), len(merged.Rows))
	return merged, nil
}

// JoinCatalog attaches summaries and reader comments to the base book table
// by product_id, producing the full catalog the server reads. Comment files
// may carry several rows per product; they are concatenated in file order.
func JoinCatalog(books, summaries, comments *Table) *Table {
	summaryByID := map[string]string{}
	if summaries != nil {
		for _, row := range summaries.Rows {
			if id := row["product_id"]; id != "" {
				summaryByID[id] = row["summary"]
			}
		}
	}

	commentsByID := map[string][]string{}
	if comments != nil {
		col := "content"
		if !comments.HasColumn(col) && comments.HasColumn("comment") {
			col = "comment"
		}
		for _, row := range comments.Rows {
			id := row["product_id"]
			text := strings.TrimSpace(row[col])
			if id != "" && text != "" {
				commentsByID[id] = append(commentsByID[id], text)
			}
		}
	}

	books.AddColumn("summary")
	books.AddColumn("content")
	for _, row := range books.Rows {
		id := row["product_id"]
		if summary, ok := summaryByID[id]; ok && row["summary"] == "" {
			row["summary"] = summary
		}
		if texts, ok := commentsByID[id]; ok {
			row["content"] = strings.Join(texts, " ")
		}
	}
	return books
}
