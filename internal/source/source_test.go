package source

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileProviderReadsText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("Solar panels.\n\nWind."), 0o644))

	text, err := NewFileProvider().Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Solar panels.\n\nWind.", text)

	text, err = NewFileProvider().Fetch(context.Background(), filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Solar panels.\n\nWind.", text)
}

func TestFileProviderRejects(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.docx"), []byte("PK"), 0o644))

	p := NewFileProvider()
	_, err := p.Fetch(context.Background(), filepath.Join(dir, "*.txt"))
	assert.ErrorIs(t, err, ErrMultipleDocuments)

	_, err = p.Fetch(context.Background(), filepath.Join(dir, "c.docx"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = p.Fetch(context.Background(), filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = p.Fetch(context.Background(), filepath.Join(dir, "*.md"))
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestHTTPProviderPlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Solar panels.\n\nWind."))
	}))
	defer srv.Close()

	text, err := NewHTTPProvider(time.Second, 0).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Solar panels.\n\nWind.", text)
}

func TestHTTPProviderHTMLKeepsParagraphs(t *testing.T) {
	page := `<html><head><title>Guide</title><style>p{}</style></head>
<body><h1>Green   energy</h1><p>Solar <b>panels</b> reduce cost.</p>
<script>var x = 1;</script><div>Wind turbines<br>are efficient.</div></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	text, err := NewHTTPProvider(time.Second, 0).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Green energy\n\nSolar panels reduce cost.\n\nWind turbines\n\nare efficient.", text)
}

func TestHTTPProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".zip") {
			w.Header().Set("Content-Type", "application/zip")
			_, _ = w.Write([]byte("PK"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	p := NewHTTPProvider(time.Second, 0)
	_, err := p.Fetch(context.Background(), srv.URL+"/doc.zip")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = p.Fetch(context.Background(), srv.URL+"/missing")
	assert.Error(t, err)
}

func TestHTTPProviderLimitsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(strings.Repeat("a", 100)))
	}))
	defer srv.Close()

	_, err := NewHTTPProvider(time.Second, 10).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTooLarge)

	text, err := NewHTTPProvider(time.Second, 100).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, text, 100)
}

func TestHTMLToTextSelfClosingSkipTags(t *testing.T) {
	for _, tag := range []string{"script", "style", "title"} {
		t.Run(tag, func(t *testing.T) {
			page := "<p>Before.</p><" + tag + "/><p>Solar panels reduce energy cost.</p>"
			text, err := htmlToText(strings.NewReader(page))
			require.NoError(t, err)
			assert.Equal(t, "Before.\n\nSolar panels reduce energy cost.", text)
		})
	}
}

// buildPDF writes a minimal PDF with one line of Helvetica text per page.
func buildPDF(pages ...string) []byte {
	var buf bytes.Buffer
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	for i, text := range pages {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

func TestFileProviderReadsPDFPages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "energy.pdf")
	require.NoError(t, os.WriteFile(path, buildPDF("Solar panels reduce energy cost.", "Wind turbines are noisy but efficient."), 0o644))

	text, err := NewAuto(time.Second, 0).Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Solar panels reduce energy cost.\n\nWind turbines are noisy but efficient.", text)
}

func TestFileProviderRejectsBrokenPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 not really"), 0o644))

	_, err := NewFileProvider().Fetch(context.Background(), path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestHTTPProviderPDF(t *testing.T) {
	doc := buildPDF("Solar panels reduce energy cost.", "Wind turbines are noisy but efficient.")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(doc)
	}))
	defer srv.Close()

	text, err := NewHTTPProvider(time.Second, 0).Fetch(context.Background(), srv.URL+"/energy.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Solar panels reduce energy cost.\n\nWind turbines are noisy but efficient.", text)
}

func TestAutoDispatch(t *testing.T) {
	assert.True(t, IsURL("HTTPS://example.com/doc"))
	assert.False(t, IsURL("docs/file.txt"))

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title"), 0o644))
	text, err := NewAuto(time.Second, 0).Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "# Title", text)
}
