package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitTruncatesToExactMax(t *testing.T) {
	long := strings.Repeat("più lungo ", 30)
	for max := 3; max <= 120; max++ {
		got := Fit(long, Budget{Max: max})
		require.Equal(t, max, Length(got), "max=%d", max)
		require.True(t, strings.HasSuffix(got, "..."), "max=%d got=%q", max, got)
	}
}

func TestFitLeavesTextWithinBudget(t *testing.T) {
	assert.Equal(t, "ciao", Fit("ciao", Budget{Min: 2, Max: 10}))
	assert.Equal(t, "ciao", Fit("ciao", Budget{}))
}

func TestFitPadsOnce(t *testing.T) {
	got := Fit("Corto.", Budget{Min: 1000})
	assert.Equal(t, "Corto. "+genericFiller, got)
	// single pass: still below the minimum
	assert.Less(t, Length(got), 1000)
}

func TestFitPaddingNeverShrinks(t *testing.T) {
	for _, s := range []string{"", "a", "Una frase breve.", strings.Repeat("x", 49)} {
		got := Fit(s, Budget{Min: 50})
		assert.GreaterOrEqual(t, Length(got), Length(s), "input %q", s)
	}
}

func TestFitPadsThenTruncates(t *testing.T) {
	got := FitWith("Breve.", Budget{Min: 20, Max: 30}, "Questa frase di riempimento è piuttosto lunga.")
	assert.Equal(t, 30, Length(got))
	assert.True(t, strings.HasPrefix(got, "Breve. Questa"))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestFitCountsRunes(t *testing.T) {
	got := Fit("èèèèèèèèèè", Budget{Max: 6})
	assert.Equal(t, "èèè...", got)
}
