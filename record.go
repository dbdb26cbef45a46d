package invoice2pdf

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Record is one flat set of field/value pairs extracted from input data.
// Keys are header names (CSV) or object keys (JSON), trimmed of surrounding
// whitespace. Values are always strings.
type Record map[string]string

// LoadRecords reads a CSV or JSON file into a sequence of records.
// The format is detected by file extension (case-insensitive).
func LoadRecords(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	default:
		return nil, fmt.Errorf("%w: %q (expected .csv or .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// loadCSV parses a CSV file using the header row as field names.
func loadCSV(path string) ([]Record, error) {
	f, err := os.Open(path) // #nosec G304 -- data path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, value := range row {
			rec[header[i]] = value
		}
		records = append(records, rec)
	}
	return records, nil
}

// loadJSON parses a JSON file holding either a single object (one record)
// or an array of objects (multiple records).
func loadJSON(path string) ([]Record, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- data path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	// UseNumber keeps numeric values verbatim instead of converting
	// through float64 (1007 must not become 1.007e+03).
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	switch v := parsed.(type) {
	case map[string]any:
		rec, err := toRecord(v)
		if err != nil {
			return nil, err
		}
		return []Record{rec}, nil
	case []any:
		records := make([]Record, 0, len(v))
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is not an object", ErrMalformedData, i)
			}
			rec, err := toRecord(obj)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: expected object or array of objects", ErrMalformedData)
	}
}

// toRecord converts a decoded JSON object to a flat string record.
func toRecord(obj map[string]any) (Record, error) {
	rec := make(Record, len(obj))
	for key, value := range obj {
		s, err := stringifyValue(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedData, key, err)
		}
		rec[strings.TrimSpace(key)] = s
	}
	return rec, nil
}

// stringifyValue converts a decoded JSON value to its string form.
// Null becomes the empty string; nested structures are re-marshaled to
// compact JSON text.
func stringifyValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		nested, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(nested), nil
	}
}
