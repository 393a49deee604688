// Package freq holds an embedded corpus-frequency rank table. Ranks order
// tracked-word listings so common words surface before rare ones; words not
// in the table sort last.
package freq

import (
	"bufio"
	_ "embed"
	"strings"

	"github.com/ofirgaash1/engsub/internal/domain"
)

//go:embed words.txt
var wordsData string

// Table maps normalized words to their 1-based frequency rank.
type Table struct {
	ranks map[string]int
}

// NewTable parses the embedded rank list: one word per line, rank = line
// position. Duplicate words keep their first (best) rank.
func NewTable() *Table {
	ranks := make(map[string]int)
	rank := 0

	scanner := bufio.NewScanner(strings.NewReader(wordsData))
	for scanner.Scan() {
		word := domain.NormalizeWord(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		rank++
		if _, seen := ranks[word]; !seen {
			ranks[word] = rank
		}
	}

	return &Table{ranks: ranks}
}

// Rank returns the 1-based frequency rank of a normalized word.
// The second return value is false for words outside the table.
func (t *Table) Rank(normalized string) (int, bool) {
	rank, ok := t.ranks[normalized]
	return rank, ok
}

// Len reports how many distinct words the table holds.
func (t *Table) Len() int {
	return len(t.ranks)
}
