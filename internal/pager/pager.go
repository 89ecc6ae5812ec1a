// Package pager computes the visible slice of a long cursor list.
package pager

// Window returns the [start, end) range of a list of total rows that fits in
// visible rows and keeps cursor on screen, roughly centred.
func Window(cursor, total, visible int) (start, end int) {
	if visible <= 0 || total <= visible {
		return 0, total
	}
	cursor = max(0, min(cursor, total-1))
	start = cursor - visible/2
	start = max(0, min(start, total-visible))
	return start, start + visible
}
