package snapimport

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// this file contains functions to handle the import/export formats of the
// engine's inputs and outputs. They remain human readable, one record per
// line.

// jprovider is the readable form of a Provider.
type jprovider struct {
	Name      string `json:"name"`
	CSVFormat string `json:"csv_format"`
}

// ImportProviders reads providers from 'r'.
//
// The format is a JSONL file, where each line is a JSON object with a 'name'
// and a 'csv_format', the comma separated list of the provider's columns.
func ImportProviders(r io.Reader) ([]Provider, error) {
	var providers []Provider
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jp jprovider
		if err := json.Unmarshal(line, &jp); err != nil {
			return nil, fmt.Errorf("cannot parse line for provider format: %q: %w", string(line), err)
		}
		providers = append(providers, Provider{Name: jp.Name, Format: ParseFormat(jp.CSVFormat)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read providers: %w", err)
	}
	return providers, nil
}

// ExportProviders writes providers to 'w' in the format read by ImportProviders.
func ExportProviders(w io.Writer, providers []Provider) error {
	for _, p := range providers {
		data, err := json.Marshal(jprovider{Name: p.Name, CSVFormat: p.Format.String()})
		if err != nil {
			return fmt.Errorf("cannot marshal provider %q: %w", p.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write provider format: %w", err)
		}
	}
	return nil
}

// DecodeRows reads rows from 'r', one JSON object per line, as written by
// EncodeRows.
func DecodeRows(r io.Reader) ([]Row, error) {
	var rows []Row
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var row Row
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("cannot parse row %q: %w", string(line), err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read rows: %w", err)
	}
	return rows, nil
}

// EncodeRows writes each value to 'w' as a line of JSON. It is used for rows,
// deltas and edit outcomes alike.
func EncodeRows[T any](w io.Writer, values []T) error {
	enc := json.NewEncoder(w)
	for _, v := range values {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("cannot write row: %w", err)
		}
	}
	return nil
}
