package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/foliodev/folio/internal/errors"
	"github.com/foliodev/folio/internal/logger"
)

// maxDocumentSize caps how much of a response body we read. The timeline
// is a handful of entries; anything near this limit is the wrong file.
const maxDocumentSize = 1 << 20

// Loader fetches the experience document from a file path or URL.
// One attempt per call: failures are terminal and rendered to the user,
// never retried.
type Loader struct {
	client *http.Client
	log    logger.Logger
}

// NewLoader creates a loader with a request timeout.
func NewLoader(timeout time.Duration) *Loader {
	return &Loader{
		client: &http.Client{Timeout: timeout},
		log:    logger.NewEnvLogger("[content]"),
	}
}

// SetLogger replaces the loader's logger. Useful for tests.
func (l *Loader) SetLogger(log logger.Logger) {
	l.log = log
}

// Fetch loads and parses the document from source. Source is an http(s)
// URL or a filesystem path.
func (l *Loader) Fetch(ctx context.Context, source string) (*Document, error) {
	var (
		data []byte
		err  error
	)

	if isURL(source) {
		data, err = l.fetchURL(ctx, source)
	} else {
		data, err = l.fetchFile(source)
	}
	if err != nil {
		l.log.Error("fetch %s: %v", source, err)
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		l.log.Error("parse %s: %v", source, err)
		return nil, err
	}

	l.log.Debug("loaded %d experience entries from %s", len(doc.Experience), source)
	return doc, nil
}

// Parse decodes raw JSON into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrContent,
			"Experience data is not valid JSON",
			"Check the document against the expected {\"experience\": [...]} shape")
	}
	return &doc, nil
}

func (l *Loader) fetchFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrContent,
				"Experience file not found: "+path,
				"Check the content.experience path in .folio.yaml")
		}
		return nil, errors.WrapWithCode(err, errors.ErrContent,
			"Cannot read experience file: "+path,
			"Check file permissions")
	}
	return data, nil
}

func (l *Loader) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrContent,
			"Invalid experience URL: "+url,
			"Check the content.experience setting")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrContent,
			"Cannot fetch experience data",
			"Check the URL and your network connection")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(errors.ErrContent,
			fmt.Sprintf("Experience fetch returned HTTP %d", resp.StatusCode),
			"Check the content.experience URL")
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrContent,
			"Failed reading experience response", "")
	}
	return data, nil
}

// isURL reports whether s looks like an http(s) URL.
func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
