package triangle

import "fmt"

// splitNameSegments splits a concatenated vertex-name string into its
// segments. A segment is one uppercase ASCII letter followed by any
// number of digits or apostrophes. Reports false if any character does
// not fit the grammar.
func splitNameSegments(s string) ([]string, bool) {
	var segments []string
	for i := 0; i < len(s); {
		if s[i] < 'A' || s[i] > 'Z' {
			return nil, false
		}
		j := i + 1
		for j < len(s) && (s[j] == '\'' || (s[j] >= '0' && s[j] <= '9')) {
			j++
		}
		segments = append(segments, s[i:j])
		i = j
	}
	return segments, true
}

// SplitName splits a triangle name such as "ABC" or "A1B1C1" into
// exactly three distinct vertex names.
func SplitName(name string) ([3]string, error) {
	segments, ok := splitNameSegments(name)
	if !ok || len(segments) != 3 {
		return [3]string{}, fmt.Errorf("%w: %q must name exactly three vertices", ErrMalformedName, name)
	}
	if segments[0] == segments[1] || segments[1] == segments[2] || segments[0] == segments[2] {
		return [3]string{}, fmt.Errorf("%w: %q repeats a vertex name", ErrMalformedName, name)
	}
	return [3]string{segments[0], segments[1], segments[2]}, nil
}
