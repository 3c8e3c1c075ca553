package tspio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/heldkarp/tsp"
)

// Solve reads one instance from r and writes its cost to w with default options.
func Solve(r io.Reader, w io.Writer) error {
	return SolveWithOptions(r, w, tsp.DefaultOptions())
}

// SolveWithOptions reads one instance from r and writes its minimum tour cost
// as one decimal line. Nothing is written when an error is returned.
func SolveWithOptions(r io.Reader, w io.Writer, opts tsp.Options) error {
	res, err := Read(r, opts)
	if err != nil {
		return err
	}

	return WriteCost(w, res.Cost)
}

// Read parses one instance and solves it, tour included. opts.MaxN is checked
// against the header before any row is read.
func Read(r io.Reader, opts tsp.Options) (tsp.Result, error) {
	m, err := parse(bufio.NewReader(r), opts.MaxN)
	if err != nil {
		return tsp.Result{}, err
	}

	return tsp.Solve(m, opts)
}

// WriteCost writes cost followed by a newline.
func WriteCost(w io.Writer, cost uint32) error {
	if _, err := io.WriteString(w, strconv.FormatUint(uint64(cost), 10)+"\n"); err != nil {
		return fmt.Errorf("tspio: write: %w", err)
	}

	return nil
}

// WriteTour writes the vertex sequence on one line, space separated.
// An empty tour writes an empty line.
func WriteTour(w io.Writer, tour []int) error {
	parts := make([]string, len(tour))
	for i, v := range tour {
		parts[i] = strconv.Itoa(v)
	}
	if _, err := io.WriteString(w, strings.Join(parts, " ")+"\n"); err != nil {
		return fmt.Errorf("tspio: write: %w", err)
	}

	return nil
}
