package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "possessive", in: "cavalry's", want: "cavalry"},
		{name: "curly possessive", in: "cavalry’s", want: "cavalry"},
		{name: "no listed suffix", in: "corrugator", want: "corrugator"},
		{name: "ing", in: "acting", want: "act"},
		{name: "ed", in: "acted", want: "act"},
		{name: "ies", in: "studies", want: "study"},
		{name: "ly", in: "quickly", want: "quick"},
		{name: "es", in: "watches", want: "watche"},
		{name: "plural s", in: "mountains", want: "mountain"},
		{name: "uppercase input", in: "ACTING", want: "act"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Stem(tt.in))
		})
	}
}

// Words of four characters or fewer never lose a suffix, so "is", "as" and
// friends survive intact.
func TestStem_ShortWordsUnchanged(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"is", "as", "was", "does", "its", "a", "toys"} {
		assert.Equal(t, w, Stem(w), "short word %q must not be truncated", w)
	}
}

// Only one rule may fire: "endings" strips "s" to "ending", never compounds
// down to "end".
func TestStem_SingleRuleOnly(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ending", Stem("endings"))
}
