// Command download-reddit collects subreddit posts through Reddit's public
// JSON endpoints (no API credentials) and writes them as a collector CSV.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"html"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	xhtml "golang.org/x/net/html"
)

const (
	searchURL   = "https://www.reddit.com/r/%s/search.json"
	maxRetries  = 3
	rateWait    = 2 * time.Minute
	minBodySize = 100
)

// Normal delays keep the collector safe to leave running unattended;
// fast mode may hit rate limits.
var (
	delayNormal = [2]int{15, 20}
	delayFast   = [2]int{3, 5}
)

// listing is the subset of Reddit's listing payload we consume.
type listing struct {
	Data struct {
		Children []struct {
			Data post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type post struct {
	ID           string  `json:"id"`
	Author       string  `json:"author"`
	CreatedUTC   float64 `json:"created_utc"`
	Title        string  `json:"title"`
	Selftext     string  `json:"selftext"`
	SelftextHTML string  `json:"selftext_html"`
	Score        int64   `json:"score"`
	Subreddit    string  `json:"subreddit"`
}

func main() {
	// .env is optional; flags win over environment defaults.
	_ = godotenv.Load()

	var (
		subsFlag  = flag.String("subreddits", "assassinscreed,gaming,Games,patientgamers", "Comma-separated subreddits")
		queryFlag = flag.String("queries", "Shadows review,AC Shadows", "Comma-separated search queries")
		termsFlag = flag.String("require", "shadows,naoe,yasuke", "Keep posts containing at least one of these terms (empty = keep all)")
		out       = flag.String("out", "data/reddit_posts.csv", "Output CSV path")
		fast      = flag.Bool("fast", false, "Shorter delays between requests (may hit rate limits)")
		limit     = flag.Int("limit", 100, "Results per search request (max 100)")
	)
	flag.Parse()

	userAgent := envOr("REDDIT_USER_AGENT", "polarity-collector/1.0 (batch sentiment research)")

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}
	outFile, err := os.Create(*out)
	if err != nil {
		log.Fatal("Failed to create output file:", err)
	}
	defer outFile.Close()

	w := csv.NewWriter(outFile)
	defer w.Flush()
	if err := w.Write([]string{"user", "date", "comment", "score", "subreddit"}); err != nil {
		log.Fatal("Failed to write header:", err)
	}

	subs := splitList(*subsFlag)
	queries := splitList(*queryFlag)
	required := splitList(*termsFlag)

	delay := delayNormal
	if *fast {
		delay = delayFast
	}

	seen := make(map[string]struct{})
	collected := 0
	for _, sub := range subs {
		for _, q := range queries {
			log.Printf("Searching r/%s for %q...", sub, q)
			posts, err := search(sub, q, *limit, userAgent)
			if err != nil {
				log.Printf("Search r/%s %q failed: %v", sub, q, err)
				continue
			}

			for _, p := range posts {
				if _, ok := seen[p.ID]; ok {
					continue
				}
				seen[p.ID] = struct{}{}

				body := postBody(p)
				if len(body) < minBodySize {
					continue
				}
				if !matchesRequired(body, required) {
					continue
				}

				row := []string{
					p.Author,
					time.Unix(int64(p.CreatedUTC), 0).UTC().Format("02 January 2006"),
					flattenText(body),
					strconv.FormatInt(p.Score, 10),
					p.Subreddit,
				}
				if err := w.Write(row); err != nil {
					log.Fatal("Failed to write row:", err)
				}
				collected++
			}
			w.Flush()

			sleepBetween(delay)
		}
	}

	log.Printf("✓ Collected %d posts to %s", collected, *out)
}

// search runs one subreddit search, waiting out rate limits.
func search(sub, query string, limit int, userAgent string) ([]post, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("restrict_sr", "1")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", "relevance")

	endpoint := fmt.Sprintf(searchURL, url.PathEscape(sub)) + "?" + params.Encode()

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(retryPause(0))
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP 429")
			log.Printf("Rate limited, waiting %s...", rateWait)
			time.Sleep(rateWait)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d", resp.StatusCode)
			time.Sleep(retryPause(attempt))
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		var l listing
		if err := json.Unmarshal(body, &l); err != nil {
			return nil, err
		}

		posts := make([]post, 0, len(l.Data.Children))
		for _, child := range l.Data.Children {
			posts = append(posts, child.Data)
		}
		return posts, nil
	}
	return nil, lastErr
}

// postBody returns title + body text, preferring the HTML field (stripped)
// because the plain selftext keeps markdown syntax.
func postBody(p post) string {
	body := p.Selftext
	if p.SelftextHTML != "" {
		// Reddit serves selftext_html entity-escaped ("&lt;div&gt;..."),
		// so it must be unescaped before parsing or the markup survives
		// as literal text.
		body = stripHTML(html.UnescapeString(p.SelftextHTML))
	}
	if body == "" {
		return p.Title
	}
	return p.Title + ". " + body
}

func matchesRequired(body string, required []string) bool {
	if len(required) == 0 {
		return true
	}
	lower := strings.ToLower(body)
	for _, term := range required {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func stripHTML(s string) string {
	doc, err := xhtml.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*xhtml.Node)
	extractText = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

func flattenText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func sleepBetween(delay [2]int) {
	span := delay[1] - delay[0]
	secs := delay[0]
	if span > 0 {
		secs += rand.Intn(span + 1)
	}
	time.Sleep(time.Duration(secs) * time.Second)
}

func retryPause(attempt int) time.Duration {
	return time.Duration(3+attempt) * time.Second
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
