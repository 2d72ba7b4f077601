package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"caelio/internal/pipeline"
)

func main() {
	root := &cobra.Command{
		Use:          "dataset",
		Short:        "Offline catalog pipeline: crawl summaries, merge files, label books",
		SilenceUsage: true,
	}
	root.AddCommand(newCrawlCommand())
	root.AddCommand(newMergeCommand())
	root.AddCommand(newLabelCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCrawlCommand() *cobra.Command {
	var (
		input     string
		output    string
		partial   string
		skip      int
		limit     int
		workers   int
		saveEvery int
		delayMS   int
	)

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Fetch book summaries from Google Books with Tiki fallback",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := pipeline.ReadTable(input)
			if err != nil {
				return err
			}

			seeds := make([]pipeline.BookSeed, 0, len(table.Rows))
			for i, row := range table.Rows {
				seeds = append(seeds, pipeline.BookSeed{
					Index:     i,
					ProductID: row["product_id"],
					Title:     row["title"],
					Authors:   row["authors"],
				})
			}
			if skip > len(seeds) {
				skip = len(seeds)
			}
			seeds = seeds[skip:]
			if limit > 0 && limit < len(seeds) {
				seeds = seeds[:limit]
			}
			log.Printf("Crawling summaries for %d books with %d workers", len(seeds), workers)

			crawler := pipeline.NewSummaryCrawler()
			rows, err := crawler.Crawl(cmd.Context(), seeds, pipeline.CrawlOptions{
				Workers:     workers,
				SaveEvery:   saveEvery,
				PartialPath: partial,
				Delay:       time.Duration(delayMS) * time.Millisecond,
			})
			if err != nil {
				return err
			}

			out := &pipeline.Table{Columns: []string{"product_id", "summary"}}
			found := 0
			for _, row := range rows {
				if row.Summary != "" {
					found++
				}
				out.Rows = append(out.Rows, map[string]string{
					"product_id": row.ProductID,
					"summary":    row.Summary,
				})
			}
			if err := pipeline.WriteTable(output, out); err != nil {
				return err
			}
			if partial != "" {
				os.Remove(partial)
			}
			log.Printf("Done: %d/%d books have a summary, written to %s", found, len(rows), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "dataset/book_data.csv", "Source book CSV")
	cmd.Flags().StringVar(&output, "output", "summary_api/books_summary.csv", "Output summary CSV")
	cmd.Flags().StringVar(&partial, "partial", "summary_api/books_summary_partial.csv", "Checkpoint file")
	cmd.Flags().IntVar(&skip, "skip", 0, "Rows to skip before crawling (resume point)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows to crawl, 0 for all")
	cmd.Flags().IntVar(&workers, "workers", 8, "Concurrent fetch workers")
	cmd.Flags().IntVar(&saveEvery, "save-every", 20, "Checkpoint after this many books")
	cmd.Flags().IntVar(&delayMS, "delay", 500, "Per-worker delay between requests, in milliseconds")
	return cmd
}

func newMergeCommand() *cobra.Command {
	var (
		parts     []string
		books     string
		summaries string
		comments  string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge summary part-files and join them onto the book catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var summaryTable *pipeline.Table
			var err error

			switch {
			case len(parts) > 0:
				summaryTable, err = pipeline.MergeTables(parts)
				if err != nil {
					return err
				}
			case summaries != "":
				summaryTable, err = pipeline.ReadTable(summaries)
				if err != nil {
					return err
				}
			}

			if books == "" {
				if summaryTable == nil {
					return fmt.Errorf("nothing to merge: pass --parts or --books")
				}
				// Part-merge only, no catalog join.
				return pipeline.WriteTable(output, summaryTable)
			}

			bookTable, err := pipeline.ReadTable(books)
			if err != nil {
				return err
			}
			var commentTable *pipeline.Table
			if comments != "" {
				commentTable, err = pipeline.ReadTable(comments)
				if err != nil {
					return err
				}
			}

			joined := pipeline.JoinCatalog(bookTable, summaryTable, commentTable)
			if err := pipeline.WriteTable(output, joined); err != nil {
				return err
			}
			log.Printf("Wrote full catalog with %d rows to %s", len(joined.Rows), output)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&parts, "parts", nil, "Summary part-files to concatenate")
	cmd.Flags().StringVar(&books, "books", "", "Base book CSV to join onto")
	cmd.Flags().StringVar(&summaries, "summaries", "", "Single summary CSV (alternative to --parts)")
	cmd.Flags().StringVar(&comments, "comments", "", "Reader comments CSV, multiple rows per product")
	cmd.Flags().StringVar(&output, "output", "dataset/books_full_data.csv", "Output CSV")
	return cmd
}

func newLabelCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "label",
		Short: "Keyword-score each book and assign its primary personality group",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := pipeline.ReadTable(input)
			if err != nil {
				return err
			}

			pipeline.LabelTable(table)
			if err := pipeline.WriteTable(output, table); err != nil {
				return err
			}

			counts := map[string]int{}
			for _, row := range table.Rows {
				counts[row["primary_group"]]++
			}
			log.Printf("Labeled %d books, written to %s", len(table.Rows), output)
			for group, n := range counts {
				log.Printf("  %s: %d", group, n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "dataset/books_full_data.csv", "Full catalog CSV")
	cmd.Flags().StringVar(&output, "output", "v2/labeled_books_v2.csv", "Labeled output CSV")
	return cmd
}
