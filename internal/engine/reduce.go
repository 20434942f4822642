package engine

// Reduce filters candidates to the words consistent with the observed
// feedback for guess, preserving their relative order. Applying the
// same reduction twice is a no-op past the first application.
func Reduce(guess string, observed Pattern, candidates []string) []string {
	var out []string
	for _, w := range candidates {
		if Classify(guess, w) == observed {
			out = append(out, w)
		}
	}
	return out
}
