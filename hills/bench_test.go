package hills_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/hills"
)

// serpentine builds an n×n map whose elevation rises gradually in
// row-major order, so the summit sits in the far corner.
func serpentine(n int) []string {
	lines := make([]string, n)
	for r := 0; r < n; r++ {
		var b strings.Builder
		for c := 0; c < n; c++ {
			b.WriteByte(byte('a' + (r*n+c)*25/(n*n)))
		}
		lines[r] = b.String()
	}
	lines[0] = "S" + lines[0][1:]
	last := lines[n-1]
	lines[n-1] = last[:n-1] + "E"
	return lines
}

func BenchmarkClimb(b *testing.B) {
	m, err := hills.FromLines(serpentine(200))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := m.Climb(); err != nil {
			b.Fatal(err)
		}
	}
}
