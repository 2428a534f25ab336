package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinOracleCoverage is the share of waypoints the oracle must place before
// its order is used at all.
const MinOracleCoverage = 0.5

var originalIndexPattern = regexp.MustCompile(`\[Original index\s*(\d+)`)

// LineDiagnostic explains why a line of the oracle answer was skipped.
type LineDiagnostic struct {
	Line   int
	Text   string
	Reason string
}

type OrderParseResult struct {
	// Indices are 0-based, in the order the oracle listed them.
	Indices     []int
	Diagnostics []LineDiagnostic
}

// Accepted reports whether enough waypoints were recognised to trust the order.
func (r OrderParseResult) Accepted(count int) bool {
	return float64(len(r.Indices)) >= float64(count)*MinOracleCoverage
}

// ParseOrderResponse scans the oracle answer line by line. Each non-empty line
// yields at most one index, taken from "[Original index k]" (closing bracket
// optional) or, when that marker is absent, from the text before the first
// ".". Unparseable, out-of-range and repeated indices are skipped and
// recorded as diagnostics.
func ParseOrderResponse(raw string, count int) OrderParseResult {
	var result OrderParseResult
	seen := make(map[int]bool, count)

	for i, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		skip := func(reason string) {
			result.Diagnostics = append(result.Diagnostics, LineDiagnostic{Line: i + 1, Text: text, Reason: reason})
		}

		k, err := extractIndex(text)
		if err != nil {
			skip(err.Error())
			continue
		}

		idx := k - 1
		switch {
		case idx < 0 || idx >= count:
			skip(fmt.Sprintf("index %d out of range 1..%d", k, count))
		case seen[idx]:
			skip(fmt.Sprintf("index %d repeated", k))
		default:
			seen[idx] = true
			result.Indices = append(result.Indices, idx)
		}
	}

	return result
}

func extractIndex(line string) (int, error) {
	if m := originalIndexPattern.FindStringSubmatch(line); m != nil {
		k, err := strconv.Atoi(strings.TrimSpace(m[1]))
		if err == nil {
			return k, nil
		}
	}

	head, _, _ := strings.Cut(line, ".")
	k, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, fmt.Errorf("no index found")
	}
	return k, nil
}
