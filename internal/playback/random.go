package playback

import "time"

// RandomStartIndex derives a start index from the wall clock. Deterministic
// enough for tests, varied enough to open a different file per run; not
// cryptographic and not meant to be.
func RandomStartIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return int(uint64(time.Now().UnixNano()) % uint64(n))
}
