package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-parser/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a page, extracts its main text, cleans it, and
// returns the cleaned text with metadata. When useBrowser is true and the
// static fetch yields too little content, it falls back to headless browser
// rendering for JavaScript-heavy pages.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, verbose bool) (string, *Metadata, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched %s: %d bytes", urlStr, len(result.HTML))
	}

	textContent, err := fetch.ExtractMainText(result.HTML, fetch.DefaultTextSelectors())
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars), falling back to browser rendering", len(textContent))
		}
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else if extracted, extractErr := fetch.ExtractMainText(browserHTML, fetch.DefaultTextSelectors()); extractErr == nil {
			textContent = extracted
		}
	}

	cleanedText := CleanText(textContent)
	metadata := NewMetadata(cleanedText, urlStr)

	return cleanedText, metadata, nil
}
