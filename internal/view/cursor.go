package view

// Position returns the index of cursor within visible, or -1 when the
// cursor is outside the current view.
func Position(cursor int, visible []int) int {
	for pos, idx := range visible {
		if idx == cursor {
			return pos
		}
	}
	return -1
}

// PrevTarget returns the catalog index preceding the cursor in the view.
// The second result is false when there is no previous target, either
// because the cursor leads the view or is not in it.
func PrevTarget(cursor int, visible []int) (int, bool) {
	pos := Position(cursor, visible)
	if pos <= 0 {
		return 0, false
	}
	return visible[pos-1], true
}

// NextTarget returns the catalog index following the cursor in the view.
func NextTarget(cursor int, visible []int) (int, bool) {
	pos := Position(cursor, visible)
	if pos < 0 || pos >= len(visible)-1 {
		return 0, false
	}
	return visible[pos+1], true
}

// AutoCorrect reassigns a cursor that fell out of scope. When scope is
// non-empty and does not contain the cursor, the first in-scope index is
// returned; otherwise the cursor is returned unchanged (an empty scope
// is the caller's empty-state to display).
func AutoCorrect(cursor int, scope []int) int {
	if len(scope) == 0 {
		return cursor
	}
	if Position(cursor, scope) >= 0 {
		return cursor
	}
	return scope[0]
}
