package session

// Progress returns the percentage for the question at zero-based index out
// of total: (index+1)/total*100. The current question counts as in progress,
// so the first question already shows a non-zero value.
func Progress(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	if index < 0 {
		index = 0
	}
	if index >= total {
		index = total - 1
	}
	return float64(index+1) / float64(total) * 100
}
