package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"go_verb_master/internal/model"
)

// Source kinds accepted by NewSource.
const (
	KindBuiltin = "builtin"
	KindFile    = "file"
	KindHTTP    = "http"
	KindExcel   = "excel"
)

// NewSource builds the source for kind. location is a path for file and excel
// sources and a URL for http.
func NewSource(kind, location string, timeout time.Duration) (Source, error) {
	switch strings.ToLower(kind) {
	case "", KindBuiltin:
		return BuiltinSource{}, nil
	case KindFile:
		return &FileSource{Path: location}, nil
	case KindHTTP:
		return NewHTTPSource(location, timeout), nil
	case KindExcel:
		return &ExcelSource{Path: location}, nil
	}
	return nil, fmt.Errorf("catalog.NewSource: unknown source kind %q: %w", kind, model.ErrInvalidInput)
}

// FileSource reads a JSON array of verb records from disk.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return KindFile }

func (s *FileSource) Fetch(ctx context.Context) ([]model.VerbRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("FileSource.Fetch: %w", err)
	}
	var records []model.VerbRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("FileSource.Fetch: decode %s: %w", s.Path, err)
	}
	return records, nil
}

// HTTPSource downloads a JSON array of verb records.
type HTTPSource struct {
	URL    string
	client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPSource{URL: url, client: &http.Client{Timeout: timeout}}
}

func (s *HTTPSource) Name() string { return KindHTTP }

func (s *HTTPSource) Fetch(ctx context.Context) ([]model.VerbRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("HTTPSource.Fetch: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTPSource.Fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("HTTPSource.Fetch: unexpected status %d", resp.StatusCode)
	}

	var records []model.VerbRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("HTTPSource.Fetch: decode: %w", err)
	}
	return records, nil
}

// ExcelSource reads the first sheet of an .xlsx workbook. The first row is a
// header naming the record fields (verb, past, participle, translation,
// example_A1, example_B1, example_B2) in any order; unknown columns are ignored.
type ExcelSource struct {
	Path string
}

func (s *ExcelSource) Name() string { return KindExcel }

func (s *ExcelSource) Fetch(ctx context.Context) ([]model.VerbRecord, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("ExcelSource.Fetch: open: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("ExcelSource.Fetch: workbook %s has no sheets", s.Path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ExcelSource.Fetch: read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["verb"]; !ok {
		return nil, fmt.Errorf("ExcelSource.Fetch: header row has no verb column")
	}

	records := make([]model.VerbRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cell := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		records = append(records, model.VerbRecord{
			Verb:        cell("verb"),
			Past:        cell("past"),
			Participle:  cell("participle"),
			Translation: cell("translation"),
			ExampleA1:   cell("example_a1"),
			ExampleB1:   cell("example_b1"),
			ExampleB2:   cell("example_b2"),
		})
	}
	return records, nil
}
