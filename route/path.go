package route

// Reconstruct walks predecessor links backwards from dst and returns the
// path source..dst inclusive.
//
// The walk stops at the first vertex whose predecessor is "" (the source, or
// a vertex that was never reached). Consequently an unreached dst yields the
// single-element path [dst], which the facade treats as "no route".
//
// A malformed predecessor map containing a cycle cannot loop forever: the
// walk is bounded by len(prev)+1 steps and returns nil when the bound is hit.
//
// Complexity: O(path length).
func Reconstruct(prev map[string]string, dst string) []string {
	var rev []string
	limit := len(prev) + 1
	for cur := dst; cur != ""; cur = prev[cur] {
		if len(rev) == limit {
			return nil
		}
		rev = append(rev, cur)
	}

	// Reverse in place: rev holds dst..source.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
