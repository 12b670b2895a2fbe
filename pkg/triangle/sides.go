package triangle

import (
	"fmt"
	"strings"
)

// sideEndpoints returns the vertex indices joined by the side opposite
// the given vertex index.
func sideEndpoints(opposite int) (int, int) {
	switch opposite {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// indexOf returns the index of the vertex with the given name, or -1.
func (vs VertexSet) indexOf(name string) int {
	for i := range vs {
		if vs[i].Name == name {
			return i
		}
	}
	return -1
}

// ResolveSide resolves a side token to the index of the opposite vertex.
// A token is either the lowercase spelling of one vertex name ("c" for
// the side opposite C) or two concatenated vertex names ("AB"). Both
// spellings of the same physical side resolve to the same index.
func (vs VertexSet) ResolveSide(token string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty side token", ErrMalformedSideName)
	}

	// Opposite-vertex form: no uppercase letter anywhere in the token
	if !strings.ContainsFunc(token, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		for i := range vs {
			if strings.ToLower(vs[i].Name) == token {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: no vertex matches side %q", ErrUnknownVertex, token)
	}

	// Endpoint form: exactly two well-formed, distinct vertex names
	segments, ok := splitNameSegments(token)
	if !ok || len(segments) != 2 || segments[0] == segments[1] {
		return 0, fmt.Errorf("%w: %q", ErrMalformedSideName, token)
	}
	i := vs.indexOf(segments[0])
	j := vs.indexOf(segments[1])
	if i < 0 || j < 0 {
		return 0, fmt.Errorf("%w: side %q", ErrUnknownVertex, token)
	}
	return 3 - i - j, nil
}

// SideName returns the endpoint spelling of the side opposite the given
// vertex index.
func (vs VertexSet) SideName(opposite int) string {
	i, j := sideEndpoints(opposite)
	return vs[i].Name + vs[j].Name
}

// SideLength returns the length of the side named by token.
func (vs VertexSet) SideLength(token string) (float64, error) {
	k, err := vs.ResolveSide(token)
	if err != nil {
		return 0, err
	}
	i, j := sideEndpoints(k)
	return vs[i].DistanceFrom(vs[j].Coord), nil
}
