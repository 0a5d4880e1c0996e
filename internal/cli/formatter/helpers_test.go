package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "Just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-30 * time.Hour), "Yesterday"},
		{time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC), "Jan 2, 2026"},
		{now.Add(time.Hour), "Mar 10, 2026"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanTimestampFrom(tt.at, now))
	}
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", stripANSI(TruncID("1234567890abcdef")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestMonthlyPrice(t *testing.T) {
	assert.Equal(t, "free", MonthlyPrice(0))
	assert.Equal(t, "$49/mo", MonthlyPrice(49))
}

func TestMaturityGauge(t *testing.T) {
	assert.Equal(t, "██░░ 2.25", stripANSI(MaturityGauge(2.25)))
	assert.Equal(t, "████ 4.00", stripANSI(MaturityGauge(4)))
	assert.Equal(t, "░░░░ 0.00", stripANSI(MaturityGauge(0)))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{{"xxx", "y"}}))
	assert.Equal(t, "A    BB\n───  ──\nxxx  y\n", got)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderBox_UppercasesTitle(t *testing.T) {
	got := stripANSI(RenderBox("diagnosis", "body"))
	assert.Contains(t, got, "DIAGNOSIS")
	assert.Contains(t, got, "body")
	assert.Contains(t, got, "╭")
}
