// Package metadata provides pure predicates over file stat fields.
package metadata

import "time"

// SizeInRange reports whether size falls within the optional byte
// bounds. Both bounds are inclusive, so a zero max admits only empty
// files.
func SizeInRange(size int64, minSize, maxSize *int64) bool {
	if minSize != nil && size < *minSize {
		return false
	}
	if maxSize != nil && size > *maxSize {
		return false
	}
	return true
}

// MTimeInRange reports whether mtime falls strictly between the
// optional bounds (after < mtime < before).
func MTimeInRange(mtime time.Time, after, before *time.Time) bool {
	if after != nil && !mtime.After(*after) {
		return false
	}
	if before != nil && !mtime.Before(*before) {
		return false
	}
	return true
}
