// Package csvimport reads reservation sheet exports into raw rows.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var ErrNoHeader = errors.New("csv has no header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode returns data as UTF-8. Input that is not valid UTF-8 is taken to be
// Shift_JIS (cp932), the default of spreadsheet exports on Japanese Windows.
func Decode(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode shift_jis: %w", err)
	}
	return out, nil
}

// Read parses a CSV export. The first record is the header; every later record
// becomes a row keyed by header cell. Short records leave trailing columns out
// and surplus cells are dropped. Blank lines are skipped.
func Read(r io.Reader) ([]allocation.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if data, err = Decode(data); err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []allocation.Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if blank(rec) {
			continue
		}

		row := make(allocation.Row, len(header))
		for i, name := range header {
			if name == "" || i >= len(rec) {
				continue
			}
			row[name] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func blank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
