package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"svw.info/sudoku-sat/internal/domain"
)

// The text puzzle format is two lines: the block dimension n (a 9×9 board
// has n=3), then a clue dictionary mapping 1-indexed cells to values:
//
//	3
//	{(1,1): 5, (1,2): 3, (2,1): 6}
//
// An empty dictionary {} is a blank board.

// ParseBoard reads a board in the text puzzle format.
func ParseBoard(r io.Reader) (*domain.Board, error) {
	br := bufio.NewReader(r)
	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading size line")
	}
	n, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return nil, errors.Wrapf(domain.ErrInvalidPuzzle, "size line %q is not an integer", strings.TrimSpace(first))
	}
	rest, err := io.ReadAll(br)
	if err != nil {
		return nil, errors.Wrap(err, "reading clue line")
	}
	clues, err := parseClues(string(rest))
	if err != nil {
		return nil, err
	}
	return domain.NewBoardFromClues(n, clues)
}

// ReadBoardFile reads a puzzle file in the text format.
func ReadBoardFile(path string) (*domain.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening puzzle file %s", path)
	}
	defer f.Close()
	return ParseBoard(f)
}

// parseClues parses the {(r,c): v, ...} dictionary. The same cell given
// twice with different values is rejected.
func parseClues(s string) (map[domain.CellCoord]int, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil, errors.Wrap(domain.ErrInvalidPuzzle, "clue dictionary must be wrapped in braces")
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	clues := make(map[domain.CellCoord]int)
	if inner == "" {
		return clues, nil
	}
	for _, part := range splitEntries(inner) {
		compact := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
				return -1
			}
			return r
		}, part)
		var row, col, val int
		if _, err := fmt.Sscanf(compact, "(%d,%d):%d", &row, &col, &val); err != nil {
			return nil, errors.Wrapf(domain.ErrInvalidPuzzle, "malformed clue entry %q", strings.TrimSpace(part))
		}
		ref := domain.CellCoord{Row: row, Col: col}
		if prev, ok := clues[ref]; ok && prev != val {
			return nil, errors.Wrapf(domain.ErrInvalidPuzzle, "cell (%d,%d) given twice with values %d and %d", row, col, prev, val)
		}
		clues[ref] = val
	}
	return clues, nil
}

// splitEntries splits the dictionary body on commas outside parentheses.
func splitEntries(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// FormatBoard renders a board in the text puzzle format with clues in
// row-major order.
func FormatBoard(b *domain.Board) string {
	clues := b.Clues()
	refs := make([]domain.CellCoord, 0, len(clues))
	for ref := range clues {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Row != refs[j].Row {
			return refs[i].Row < refs[j].Row
		}
		return refs[i].Col < refs[j].Col
	})
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n{", b.N)
	for i, ref := range refs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d,%d): %d", ref.Row, ref.Col, clues[ref])
	}
	sb.WriteString("}\n")
	return sb.String()
}

// WriteBoardFile writes a board as a text puzzle file.
func WriteBoardFile(path string, b *domain.Board) error {
	return errors.Wrapf(os.WriteFile(path, []byte(FormatBoard(b)), 0o644), "writing puzzle file %s", path)
}
