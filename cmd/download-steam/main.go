// Command download-steam collects Steam user reviews for an app through the
// public appreviews JSON API and writes them as a collector CSV.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	reviewsURL  = "https://store.steampowered.com/appreviews/%d"
	pageSize    = 100
	maxAttempts = 5
	retryDelay  = 3 * time.Second
	pageDelay   = 1500 * time.Millisecond
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// reviewsResponse is the appreviews API payload.
type reviewsResponse struct {
	Success int      `json:"success"`
	Reviews []review `json:"reviews"`
	Cursor  string   `json:"cursor"`
}

type review struct {
	Author           author `json:"author"`
	Review           string `json:"review"`
	TimestampCreated int64  `json:"timestamp_created"`
	VotesUp          int64  `json:"votes_up"`
	VotedUp          bool   `json:"voted_up"`
}

type author struct {
	SteamID string `json:"steamid"`
}

func main() {
	// .env is optional; flags win over environment defaults.
	_ = godotenv.Load()

	var (
		appID    = flag.Int64("appid", 0, "Steam app ID (required)")
		out      = flag.String("out", "data/steam_reviews.csv", "Output CSV path")
		language = flag.String("language", envOr("STEAM_LANGUAGE", "english"), "Review language filter")
		maxCount = flag.Int("max", 0, "Maximum reviews to collect (0 = all)")
	)
	flag.Parse()

	if *appID == 0 {
		log.Fatal("--appid required")
	}

	log.Printf("Downloading Steam reviews for app %d...", *appID)

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
	if err := w.Write([]string{"user", "date", "comment", "helpful", "recommended"}); err != nil {
		log.Fatal("Failed to write header:", err)
	}

	cursor := "*"
	collected := 0
	page := 1
	for {
		log.Printf("Fetching page %d...", page)
		resp, err := fetchPage(*appID, *language, cursor)
		if err != nil {
			log.Printf("Giving up on page %d: %v", page, err)
			break
		}
		if len(resp.Reviews) == 0 {
			log.Print("No more reviews.")
			break
		}

		for _, r := range resp.Reviews {
			recommended := "Not Recommended"
			if r.VotedUp {
				recommended = "Recommended"
			}
			row := []string{
				r.Author.SteamID,
				formatTimestamp(r.TimestampCreated),
				flattenText(r.Review),
				strconv.FormatInt(r.VotesUp, 10),
				recommended,
			}
			if err := w.Write(row); err != nil {
				log.Fatal("Failed to write row:", err)
			}
			collected++
			if *maxCount > 0 && collected >= *maxCount {
				log.Printf("✓ Collected %d reviews to %s", collected, *out)
				return
			}
		}

		if resp.Cursor == "" || resp.Cursor == cursor {
			break
		}
		cursor = resp.Cursor
		page++

		// Be nice to the API
		time.Sleep(pageDelay)
	}

	log.Printf("✓ Collected %d reviews to %s", collected, *out)
}

// fetchPage retrieves one cursor page, retrying transient failures.
func fetchPage(appID int64, language, cursor string) (*reviewsResponse, error) {
	params := url.Values{}
	params.Set("json", "1")
	params.Set("filter", "all")
	params.Set("language", language)
	params.Set("day_range", "9223372036854775807")
	params.Set("num_per_page", strconv.Itoa(pageSize))
	params.Set("cursor", cursor)

	endpoint := fmt.Sprintf(reviewsURL, appID) + "?" + params.Encode()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := getPage(appID, endpoint)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		log.Printf("Attempt %d/%d failed: %v", attempt, maxAttempts, err)
		time.Sleep(retryDelay)
	}
	return nil, lastErr
}

func getPage(appID int64, endpoint string) (*reviewsResponse, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Referer", fmt.Sprintf("https://store.steampowered.com/app/%d/", appID))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var page reviewsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, err
	}
	if page.Success != 1 {
		return nil, fmt.Errorf("API success=%d", page.Success)
	}
	return &page, nil
}

// formatTimestamp converts a UNIX timestamp to "02 January 2006".
func formatTimestamp(ts int64) string {
	if ts == 0 {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format("02 January 2006")
}

// flattenText removes line breaks so one review stays one CSV row
// for naive downstream readers.
func flattenText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
