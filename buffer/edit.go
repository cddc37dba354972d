package buffer

// Edit describes a single replacement: the byte range to remove and
// the text to put in its place. Insertions use an empty range and
// deletions use empty NewText.
type Edit struct {
	Range   Range
	NewText string
}

// IsInsert returns true if the edit removes nothing.
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty()
}

// IsDelete returns true if the edit inserts nothing.
func (e Edit) IsDelete() bool {
	return e.NewText == ""
}

// EditResult reports what an applied edit changed.
type EditResult struct {
	OldRange Range  // range that was replaced
	NewRange Range  // range now holding the new text
	OldText  string // text that was removed
	Delta    int    // byte length change, new minus old
}
