package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "hello")
	assert.Equal(t, "text/html", result.ContentType)
}

func TestURL_NonOKStatusReturnsPartialResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestURL_InvalidURL(t *testing.T) {
	for _, bad := range []string{"", "not-a-url", "://missing-scheme"} {
		result, err := URL(context.Background(), bad, nil)
		assert.Nil(t, result)
		require.Error(t, err)

		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "invalid URL", fetchErr.Message)
	}
}

func TestExtractMainText_SelectorPrecedence(t *testing.T) {
	html := `<html><body>
		<nav>Home | About</nav>
		<main>Jane Doe
Senior Engineer</main>
		<div class="content">duplicate copy</div>
		<footer>© 2024</footer>
	</body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Engineer", text)
}

func TestExtractMainText_BodyFallback(t *testing.T) {
	html := `<html><body><div>plain page text</div><script>var x = 1;</script></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "plain page text", text)
}

func TestExtractMainText_RemovesNoise(t *testing.T) {
	html := `<html><body><main>real content</main><div class="ad">buy now</div></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.NotContains(t, text, "buy now")
	assert.Contains(t, text, "real content")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   short   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength)))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, DefaultTimeout, opts.Timeout)
	assert.Equal(t, DefaultUserAgent, opts.UserAgent)
}
