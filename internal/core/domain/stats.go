package domain

// CountByStatus tallies tasks per status in a single pass. Every bucket is
// initialized first so statuses with zero tasks still appear in the result;
// the four counts always sum to len(tasks) when all statuses are valid.
func CountByStatus(tasks []Task) map[TaskStatus]int {
	counts := make(map[TaskStatus]int, len(AllStatuses))
	for _, s := range AllStatuses {
		counts[s] = 0
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}
