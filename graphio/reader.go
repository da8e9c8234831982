// Package graphio reads graphs from CSV edge lists and writes colorings as
// CSV.
package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcolor/core"
)

// ErrMalformedRecord indicates a row that is neither "u,v" nor "v".
var ErrMalformedRecord = errors.New("graphio: malformed record")

// ReadEdgeListFile opens path and parses it with ReadEdgeList.
func ReadEdgeListFile(path string) (*core.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	g, err := ReadEdgeList(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// ReadEdgeList parses an edge list:
//
//	# comment
//	source,target      optional header, skipped when not numeric
//	0,1                edge; both endpoints are created
//	7                  isolated vertex
//
// Any AddEdge failure (self loop, negative ID) aborts the read with the line
// number.
func ReadEdgeList(r io.Reader) (*core.Graph, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	g := core.NewGraph()
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		ids, err := parseIntRecord(record, line)
		if err != nil {
			return nil, err
		}
		switch len(ids) {
		case 1:
			if err := g.AddVertex(ids[0]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case 2:
			if err := g.AddVertices(ids[0], ids[1]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if err := g.AddEdge(ids[0], ids[1]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("line %d: expected 1 or 2 columns, got %d: %w", line, len(ids), ErrMalformedRecord)
		}
	}

	return g, nil
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(record[0]))
	return err != nil
}

func parseIntRecord(record []string, line int) ([]int, error) {
	result := make([]int, len(record))
	for i, field := range record {
		val, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("line %d, column %d: invalid integer: %w", line, i+1, errors.Join(ErrMalformedRecord, err))
		}
		result[i] = val
	}

	return result, nil
}
