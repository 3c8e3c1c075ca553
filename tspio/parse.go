package tspio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/tsp"
)

// Parse reads a header and n rows from r. n = 0 yields a 0×0 matrix and leaves
// the rest of r unread.
//
// Errors:
//   - *MalformedInputError for a bad header or a row with the wrong token count.
//   - wrapped reader errors other than io.EOF.
func Parse(r io.Reader) (*matrix.Dense, error) {
	return parse(bufio.NewReader(r), 0)
}

// parse stops with tsp.ErrTooLarge right after the header when maxN > 0 and n > maxN.
func parse(br *bufio.Reader, maxN int) (*matrix.Dense, error) {
	header, err := readLine(br)
	if err != nil {
		return nil, err
	}

	n, err := parseHeader(header)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return matrix.New(0)
	}
	if maxN > 0 && n > maxN {
		return nil, fmt.Errorf("%w: n=%d exceeds limit %d", tsp.ErrTooLarge, n, maxN)
	}

	// Rows are grown one line at a time so a huge header cannot force a huge allocation.
	var (
		rows [][]uint32
		line string
		k    int
	)
	for k = 1; k <= n; k++ {
		line, err = readLine(br)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != n {
			return nil, &MalformedInputError{Line: k, Expected: n, Actual: len(fields)}
		}
		rows = append(rows, parseRow(fields))
	}

	return matrix.FromRows(rows)
}

// parseHeader accepts a trimmed non-negative decimal.
func parseHeader(s string) (int, error) {
	tok := strings.TrimSpace(s)
	v, err := strconv.ParseUint(trimPlus(tok), 10, strconv.IntSize-1)
	if err != nil {
		reason := "not a non-negative integer"
		if errors.Is(err, strconv.ErrRange) {
			reason = "out of range"
		}

		return 0, &MalformedInputError{Token: tok, Reason: reason}
	}

	return int(v), nil
}

// parseRow converts tokens to costs; anything that is not a uint32 becomes Unreachable.
func parseRow(fields []string) []uint32 {
	row := make([]uint32, len(fields))
	for j, f := range fields {
		v, err := strconv.ParseUint(trimPlus(f), 10, 32)
		if err != nil {
			row[j] = matrix.Unreachable
			continue
		}
		row[j] = uint32(v)
	}

	return row
}

// trimPlus drops one leading '+'; a sign is accepted on input, never required.
func trimPlus(s string) string {
	if len(s) > 1 && s[0] == '+' {
		return s[1:]
	}

	return s
}

// readLine returns the next line without its terminator. EOF yields whatever
// was buffered (possibly ""), never an error.
func readLine(br *bufio.Reader) (string, error) {
	s, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("tspio: read: %w", err)
	}

	return strings.TrimRight(s, "\r\n"), nil
}
