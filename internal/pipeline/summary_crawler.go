package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	googleBooksURL = "https://www.googleapis.com/books/v1/volumes"
	tikiSearchURL  = "https://tiki.vn/api/v2/products"

	crawlUserAgent = "Mozilla/5.0"
)

// BookSeed is one catalog row the crawler needs a summary for. Index keeps
// the input file order so partial saves stay aligned with the source.
type BookSeed struct {
	Index     int
	ProductID string
	Title     string
	Authors   string
}

// SummaryRow is the crawler's output: product id plus whatever description
// was found, empty when both sources came up dry.
type SummaryRow struct {
	Index     int
	ProductID string
	Summary   string
}

type CrawlOptions struct {
	Workers     int
	SaveEvery   int
	PartialPath string
	Delay       time.Duration
}

// SummaryCrawler fetches book descriptions from Google Books, falling back
// to the Tiki product API when Google has nothing.
type SummaryCrawler struct {
	client *http.Client
}

func NewSummaryCrawler() *SummaryCrawler {
	return &SummaryCrawler{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Crawl resolves summaries for every seed with a bounded worker pool,
// checkpointing to opts.PartialPath every opts.SaveEvery completions.
// Results come back in input order.
func (c *SummaryCrawler) Crawl(ctx context.Context, seeds []BookSeed, opts CrawlOptions) ([]SummaryRow, error) {
	if opts.Workers <= 0 {
		opts.Workers = 8
	}

	jobs := make(chan BookSeed)
	results := make([]SummaryRow, 0, len(seeds))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				summary := c.summarize(ctx, seed)

				mu.Lock()
				results = append(results, SummaryRow{
					Index:     seed.Index,
					ProductID: seed.ProductID,
					Summary:   summary,
				})
				done := len(results)
				checkpoint := opts.SaveEvery > 0 && opts.PartialPath != "" && done%opts.SaveEvery == 0
				if checkpoint {
					if err := writeSummaries(opts.PartialPath, sortedCopy(results)); err != nil {
						log.Printf("Error writing partial summaries: %v", err)
					} else {
						log.Printf("Checkpoint: %d/%d summaries saved to %s", done, len(seeds), opts.PartialPath)
					}
				}
				mu.Unlock()

				if opts.Delay > 0 {
					select {
					case <-time.After(opts.Delay):
					case <-ctx.Done():
					}
				}
			}
		}()
	}

	for _, seed := range seeds {
		select {
		case jobs <- seed:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, nil
}

func (c *SummaryCrawler) summarize(ctx context.Context, seed BookSeed) string {
	summary, err := c.googleBooksSummary(ctx, seed.Title, seed.Authors)
	if err != nil {
		log.Printf("Error fetching from Google Books for %q: %v", seed.Title, err)
	}
	if summary != "" {
		return summary
	}

	summary, err = c.tikiSummary(ctx, seed.Title)
	if err != nil {
		log.Printf("Error fetching from Tiki for %q: %v", seed.Title, err)
	}
	if summary == "" {
		log.Printf("No summary found for %q", seed.Title)
	}
	return summary
}

func (c *SummaryCrawler) googleBooksSummary(ctx context.Context, title, authors string) (string, error) {
	query := fmt.Sprintf("intitle:%s+inauthor:%s", title, authors)
	endpoint := googleBooksURL + "?q=" + url.QueryEscape(query) + "&langRestrict=vi"

	var payload struct {
		Items []struct {
			VolumeInfo struct {
				Description string `json:"description"`
			} `json:"volumeInfo"`
		} `json:"items"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	if len(payload.Items) == 0 {
		return "", nil
	}
	desc := payload.Items[0].VolumeInfo.Description
	return strings.TrimSpace(strings.ReplaceAll(desc, "\n", " ")), nil
}

func (c *SummaryCrawler) tikiSummary(ctx context.Context, title string) (string, error) {
	var search struct {
		Data []struct {
			ID json.Number `json:"id"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, tikiSearchURL+"?q="+url.QueryEscape(title), &search); err != nil {
		return "", err
	}
	if len(search.Data) == 0 {
		return "", nil
	}

	var detail struct {
		Description string `json:"description"`
	}
	if err := c.getJSON(ctx, tikiSearchURL+"/"+search.Data[0].ID.String(), &detail); err != nil {
		return "", err
	}
	if detail.Description == "" {
		return "", nil
	}
	return StripHTML(detail.Description), nil
}

func (c *SummaryCrawler) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", crawlUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// StripHTML flattens an HTML fragment to its visible text.
func StripHTML(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	var parts []string
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(parts, " ")
}

func sortedCopy(rows []SummaryRow) []SummaryRow {
	out := make([]SummaryRow, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func writeSummaries(path string, rows []SummaryRow) error {
	table := &Table{Columns: []string{"product_id", "summary"}}
	for _, row := range rows {
		table.Rows = append(table.Rows, map[string]string{
			"product_id": row.ProductID,
			"summary":    row.Summary,
		})
	}
	return WriteTable(path, table)
}
