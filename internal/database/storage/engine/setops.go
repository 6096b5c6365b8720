package engine

// Union returns the members of a and b without duplicates.
func Union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	result := make([]string, 0, len(a)+len(b))

	for _, members := range [][]string{a, b} {
		for _, member := range members {
			if _, exists := seen[member]; exists {
				continue
			}
			seen[member] = struct{}{}
			result = append(result, member)
		}
	}

	return result
}

// SymmetricDifference returns members found in exactly one of a and b.
func SymmetricDifference(a, b []string) []string {
	inA := toSet(a)
	inB := toSet(b)

	result := make([]string, 0, len(a)+len(b))
	for _, member := range Union(a, nil) {
		if _, exists := inB[member]; !exists {
			result = append(result, member)
		}
	}
	for _, member := range Union(b, nil) {
		if _, exists := inA[member]; !exists {
			result = append(result, member)
		}
	}

	return result
}

func toSet(members []string) map[string]struct{} {
	set := make(map[string]struct{}, len(members))
	for _, member := range members {
		set[member] = struct{}{}
	}
	return set
}
