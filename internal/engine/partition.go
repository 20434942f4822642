package engine

// Partition groups candidates by the feedback pattern guess would
// receive if each candidate were the target, returning the size of each
// bucket. An empty candidate set yields an empty partition.
func Partition(guess string, candidates []string) map[Pattern]int {
	buckets := make(map[Pattern]int)
	for _, w := range candidates {
		buckets[Classify(guess, w)]++
	}
	return buckets
}

// BucketSizes returns the multiset of bucket sizes for guess over
// candidates. Strategies consume only this multiset, not the bucket
// identities.
func BucketSizes(guess string, candidates []string) []int {
	buckets := Partition(guess, candidates)
	sizes := make([]int, 0, len(buckets))
	for _, n := range buckets {
		sizes = append(sizes, n)
	}
	return sizes
}
