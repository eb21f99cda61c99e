// Package ingest parses whitespace-separated client and order records into
// domain structures. Every parse failure is fatal to the batch and is tagged
// with the offending field plus the 1-based line number.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tradematch/engine/internal/domain"
)

// DefaultSymbols is the asset column order of a client record when no
// explicit symbol list is configured.
var DefaultSymbols = []string{"A", "B", "C", "D"}

// Client-record ingestion errors, tagged per field.
var (
	ErrClientShortRecord = errors.New("client record has too few fields")
	ErrClientCash        = errors.New("unparsable cash balance")
	ErrClientAsset       = errors.New("unparsable asset balance")
)

// ParseClient parses one client line: id, cash, then one balance per symbol
// in the given column order.
func ParseClient(line string, symbols []string) (domain.Client, error) {
	fields := strings.Fields(line)
	if len(fields) < 2+len(symbols) {
		return domain.Client{}, fmt.Errorf("got %d fields, want %d: %w",
			len(fields), 2+len(symbols), ErrClientShortRecord)
	}

	cash, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return domain.Client{}, fmt.Errorf("%q: %w", fields[1], ErrClientCash)
	}

	assets := make(map[string]uint64, len(symbols))
	for i, sym := range symbols {
		bal, err := strconv.ParseUint(fields[2+i], 10, 64)
		if err != nil {
			return domain.Client{}, fmt.Errorf("%s=%q: %w", sym, fields[2+i], ErrClientAsset)
		}
		assets[sym] = bal
	}

	return domain.Client{ID: fields[0], Cash: cash, Assets: assets}, nil
}

// ReadClients parses every line of r. Blank lines are skipped; any malformed
// record aborts the whole load.
func ReadClients(r io.Reader, symbols []string) ([]domain.Client, error) {
	var out []domain.Client
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := ParseClient(text, symbols)
		if err != nil {
			return nil, fmt.Errorf("clients line %d: %w", line, err)
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read clients: %w", err)
	}
	return out, nil
}
