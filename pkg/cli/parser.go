package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Edge links a child to its parent. An empty parent marks the root. Slot is
// the requested child slot for bounded trees, or -1.
type Edge struct {
	Parent string
	Child  string
	Slot   int
}

type Record map[string]string

// formatOf picks the edge file format from the flag or the file extension.
func formatOf(path string, format string) (string, error) {
	if format != "" && format != "auto" {
		return format, nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return "csv", nil
	case ".tsv":
		return "tsv", nil
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("can not detect format of %s, use --format", path)
	}
}

// parseEdges reads every edge of path and hands it to onEachEdge in file order.
func parseEdges(flags *TreeFlags, path string, onEachEdge func(edge Edge) error) error {
	format, err := formatOf(path, flags.Format)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	onEachRecord := func(record Record) error {
		edge, err := parseEdge(record, flags)
		if err != nil {
			return err
		}
		return onEachEdge(edge)
	}

	switch format {
	case "csv":
		return parseCsv(file, ',', onEachRecord)
	case "tsv":
		return parseCsv(file, '\t', onEachRecord)
	case "json":
		return parseJson(file, onEachRecord)
	case "yaml":
		return parseYaml(file, onEachRecord)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func parseJson(r io.Reader, onEachRecord func(Record) error) error {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	for decoder.More() {
		raw := map[string]any{}
		if err := decoder.Decode(&raw); err != nil {
			return err
		}
		if err := onEachRecord(toRecord(raw)); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err := decoder.Token()
	return err
}

func parseCsv(r io.Reader, separator rune, onEachRecord func(Record) error) error {
	reader := csv.NewReader(r)
	reader.Comma = separator
	reader.Comment = '#'

	// the first line is the header
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		recordData, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record, len(headers))
		for i, value := range recordData {
			record[headers[i]] = strings.TrimSpace(value)
		}
		if err := onEachRecord(record); err != nil {
			return err
		}
	}
}

func parseYaml(r io.Reader, onEachRecord func(Record) error) error {
	var raws []map[string]any
	if err := yaml.NewDecoder(r).Decode(&raws); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for _, raw := range raws {
		if err := onEachRecord(toRecord(raw)); err != nil {
			return err
		}
	}
	return nil
}

// toRecord flattens decoded scalars to strings; null becomes empty.
func toRecord(raw map[string]any) Record {
	record := make(Record, len(raw))
	for key, value := range raw {
		if value == nil {
			record[key] = ""
			continue
		}
		record[key] = fmt.Sprint(value)
	}
	return record
}

func parseEdge(record Record, flags *TreeFlags) (Edge, error) {
	child, found := record[flags.ChildKey]
	if !found || child == "" {
		return Edge{}, fmt.Errorf("record has no %q value: %v", flags.ChildKey, record)
	}
	edge := Edge{
		Parent: record[flags.ParentKey],
		Child:  child,
		Slot:   -1,
	}
	if slot := record[flags.SlotKey]; slot != "" {
		i, err := strconv.Atoi(slot)
		if err != nil {
			return Edge{}, fmt.Errorf("can not convert slot to int for record: %v", record)
		}
		edge.Slot = i
	}
	return edge, nil
}
