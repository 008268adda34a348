package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const defaultMaxBytes = 16 << 20

// HTTPProvider downloads a document. HTML pages are reduced to text with one
// paragraph per block element, PDFs to their page text; other text bodies are returned as is.
type HTTPProvider struct {
	client   *http.Client
	maxBytes int64
}

func NewHTTPProvider(timeout time.Duration, maxBytes int64) *HTTPProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &HTTPProvider{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		maxBytes: maxBytes,
	}
}

func (p *HTTPProvider) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "docqa/1.0")
	req.Header.Set("Accept", "text/plain, text/markdown, text/html;q=0.9, application/pdf;q=0.8")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if !supportedMedia(mediaType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mediaType)
	}

	data, err := readLimited(resp.Body, p.maxBytes)
	if err != nil {
		return "", err
	}
	switch mediaType {
	case "text/html", "application/xhtml+xml":
		return htmlToText(bytes.NewReader(data))
	case "application/pdf":
		return pdfText(bytes.NewReader(data), int64(len(data)))
	default:
		return string(data), nil
	}
}

func supportedMedia(mediaType string) bool {
	switch mediaType {
	case "", "text/html", "application/xhtml+xml", "application/pdf":
		return true
	}
	return strings.HasPrefix(mediaType, "text/")
}

// readLimited reads at most limit bytes and fails instead of truncating.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}

var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "ul": {}, "ol": {}, "tr": {}, "table": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"section": {}, "article": {}, "header": {}, "footer": {}, "blockquote": {}, "pre": {},
}

var skipTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {}, "title": {}, "template": {},
}

// htmlToText extracts visible text, separating block elements with blank lines
// so paragraph segmentation still works on web pages.
func htmlToText(r io.Reader) (string, error) {
	tokenizer := html.NewTokenizer(r)
	var paragraphs []string
	var current []string
	skipDepth := 0
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = current[:0]
		}
	}
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				flush()
				return strings.Join(paragraphs, "\n\n"), nil
			}
			return "", tokenizer.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			tt := tokenizer.Token()
			tag := tt.Data
			if tt.Type == html.SelfClosingTagToken {
				// <script/> has no content and no end tag to balance skipDepth
				tokenizer.NextIsNotRawText()
			} else if _, ok := skipTags[tag]; ok {
				skipDepth++
			}
			if _, ok := blockTags[tag]; ok {
				flush()
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if _, ok := skipTags[tag]; ok && skipDepth > 0 {
				skipDepth--
			}
			if _, ok := blockTags[tag]; ok {
				flush()
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			current = append(current, strings.Fields(string(tokenizer.Text()))...)
		}
	}
}
