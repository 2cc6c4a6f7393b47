package bmatrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load deserializes the text boundary-list format of spec.md §6: one
// column per non-blank, non-'#' line, each line "d r_1 r_2 … r_k" giving
// the column's dimension d and its sorted boundary row indices. k must
// equal d, or loading fails with ErrBoundaryDimensionMismatch.
//
// Complexity: O(total tokens).
func Load(r io.Reader) (*Matrix, error) {
	var rows [][]Index
	var dims []int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		d, err := strconv.Atoi(fields[0])
		if err != nil || d < 0 {
			return nil, fmt.Errorf("bmatrix: parse dimension %q: %w", fields[0], ErrInvalidInput)
		}
		rowTokens := fields[1:]
		if len(rowTokens) != d {
			return nil, fmt.Errorf("bmatrix: column declares dim %d but has %d rows: %w", d, len(rowTokens), ErrBoundaryDimensionMismatch)
		}
		col := make([]Index, len(rowTokens))
		for i, tok := range rowTokens {
			v, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bmatrix: parse row %q: %w", tok, ErrInvalidInput)
			}
			col[i] = Index(v)
			if i > 0 && col[i] <= col[i-1] {
				return nil, fmt.Errorf("bmatrix: row %q out of order: %w", tok, ErrInvalidInput)
			}
		}
		rows = append(rows, col)
		dims = append(dims, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bmatrix: scan: %w", err)
	}

	m := New(len(rows))
	for j, col := range rows {
		if err := m.SetColumn(j, col); err != nil {
			return nil, err
		}
		m.SetDim(j, dims[j])
	}

	return m, nil
}

// Store serializes m in the text boundary-list format of spec.md §6, one
// line per column: "d r_1 r_2 … r_k".
func Store(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)
	for j := 0; j < m.NumColumns(); j++ {
		rows := m.GetColumn(j)
		if _, err := fmt.Fprintf(bw, "%d", m.Dim(j)); err != nil {
			return err
		}
		for _, r := range rows {
			if _, err := fmt.Fprintf(bw, " %d", r); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
