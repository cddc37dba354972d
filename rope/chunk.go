package rope

// Chunk size bounds control the granularity of leaf storage.
const (
	// maxChunkBytes is the maximum bytes per chunk before splitting.
	maxChunkBytes = 256

	// targetChunkBytes is the preferred chunk size when building.
	targetChunkBytes = 192
)

// chunk is a bounded immutable string with precomputed metrics.
type chunk struct {
	text string
	sum  Summary
}

func newChunk(s string) chunk {
	return chunk{text: s, sum: Summarize(s)}
}

func (c chunk) len() int {
	return len(c.text)
}

func (c chunk) isEmpty() bool {
	return len(c.text) == 0
}

// cut splits the chunk at a byte offset. The offset must be a
// character boundary.
func (c chunk) cut(offset int) (chunk, chunk) {
	if offset <= 0 {
		return chunk{}, c
	}
	if offset >= len(c.text) {
		return c, chunk{}
	}
	return newChunk(c.text[:offset]), newChunk(c.text[offset:])
}

// chunksOf splits a string into chunks of bounded size, cutting only
// at character boundaries and preferring cuts after newlines.
func chunksOf(s string) []chunk {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= maxChunkBytes {
		return []chunk{newChunk(s)}
	}

	var chunks []chunk
	rest := s
	for len(rest) > maxChunkBytes {
		cut := cutPoint(rest, targetChunkBytes)
		chunks = append(chunks, newChunk(rest[:cut]))
		rest = rest[cut:]
	}
	if len(rest) > 0 {
		chunks = append(chunks, newChunk(rest))
	}
	return chunks
}

// cutPoint finds a character boundary near target, preferring the
// position just after a nearby newline.
func cutPoint(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}

	lo := target - 32
	if lo < 1 {
		lo = 1
	}
	hi := target + 32
	if hi > len(s) {
		hi = len(s)
	}
	for i := target; i > lo; i-- {
		if s[i-1] == '\n' {
			return i
		}
	}
	for i := target + 1; i < hi; i++ {
		if s[i-1] == '\n' {
			return i
		}
	}

	cut := target
	for cut < len(s) && !isBoundaryByte(s[cut]) {
		cut++
	}
	return cut
}

// isBoundaryByte reports whether b can start a UTF-8 sequence.
// Continuation bytes have the form 10xxxxxx.
func isBoundaryByte(b byte) bool {
	return b&0xC0 != 0x80
}
