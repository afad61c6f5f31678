package utils

// GetNextEnum advances an index-like value, wrapping past max back to 0.
func GetNextEnum[T ~int](current T, max T) T {
	next := current + 1
	if next > max {
		return 0
	}
	return next
}

// GetPrevEnum steps an index-like value back, wrapping below 0 to max.
func GetPrevEnum[T ~int](current T, max T) T {
	prev := current - 1
	if prev < 0 {
		return max
	}
	return prev
}
