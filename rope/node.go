package rope

import "strings"

// Tree arity bounds.
const (
	// maxChildren is the maximum children per internal node.
	maxChildren = 8

	// maxLeafChunks is the maximum chunks per leaf node.
	maxLeafChunks = 4
)

// node is a node in the rope tree. Leaves (height 0) hold text chunks,
// internal nodes hold children. Every node carries the aggregated
// summary of its subtree.
type node struct {
	height   uint8
	sum      Summary
	children []*node // internal nodes only
	chunks   []chunk // leaf nodes only
}

func newLeaf(chunks []chunk) *node {
	n := &node{chunks: chunks}
	for _, c := range chunks {
		n.sum = n.sum.Add(c.sum)
	}
	return n
}

func newInternal(children []*node) *node {
	if len(children) == 0 {
		return newLeaf(nil)
	}
	n := &node{
		height:   children[0].height + 1,
		children: children,
	}
	for _, child := range children {
		n.sum = n.sum.Add(child.sum)
	}
	return n
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

// appendTo writes all text in the subtree to sb.
func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.text)
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange writes the text in [start, end) to sb. Bounds are local
// to the subtree and assumed pre-clamped by the caller.
func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	if n.isLeaf() {
		offset := 0
		for _, c := range n.chunks {
			chunkEnd := offset + c.len()
			if chunkEnd > start && offset < end {
				lo := max(start-offset, 0)
				hi := min(end-offset, c.len())
				sb.WriteString(c.text[lo:hi])
			}
			offset = chunkEnd
			if offset >= end {
				break
			}
		}
		return
	}

	offset := 0
	for _, child := range n.children {
		childEnd := offset + child.sum.Bytes
		if childEnd > start && offset < end {
			child.appendRange(sb, max(start-offset, 0), min(end-offset, child.sum.Bytes))
		}
		offset = childEnd
		if offset >= end {
			break
		}
	}
}

// byteAt returns the byte at a subtree-local offset.
func (n *node) byteAt(offset int) byte {
	for !n.isLeaf() {
		for _, child := range n.children {
			if offset < child.sum.Bytes {
				n = child
				break
			}
			offset -= child.sum.Bytes
		}
	}
	for _, c := range n.chunks {
		if offset < c.len() {
			return c.text[offset]
		}
		offset -= c.len()
	}
	return 0
}

// newlinesBefore counts '\n' characters in [0, offset).
func (n *node) newlinesBefore(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= n.sum.Bytes {
		return n.sum.Newlines
	}

	if n.isLeaf() {
		count := 0
		for _, c := range n.chunks {
			if offset >= c.len() {
				count += c.sum.Newlines
				offset -= c.len()
				continue
			}
			return count + strings.Count(c.text[:offset], "\n")
		}
		return count
	}

	count := 0
	for _, child := range n.children {
		if offset >= child.sum.Bytes {
			count += child.sum.Newlines
			offset -= child.sum.Bytes
			continue
		}
		return count + child.newlinesBefore(offset)
	}
	return count
}

// offsetAfterNewline returns the byte offset immediately after the
// k-th newline, 1-based. k must be in [1, sum.Newlines].
func (n *node) offsetAfterNewline(k int) int {
	base := 0
	for !n.isLeaf() {
		for _, child := range n.children {
			if k <= child.sum.Newlines {
				n = child
				break
			}
			k -= child.sum.Newlines
			base += child.sum.Bytes
		}
	}
	for _, c := range n.chunks {
		if k <= c.sum.Newlines {
			idx := nthNewline(c.text, k)
			return base + idx + 1
		}
		k -= c.sum.Newlines
		base += c.len()
	}
	return base
}

// nthNewline returns the byte index of the k-th '\n' in s, 1-based.
func nthNewline(s string, k int) int {
	from := 0
	for {
		i := strings.IndexByte(s[from:], '\n')
		if i < 0 {
			return -1
		}
		k--
		if k == 0 {
			return from + i
		}
		from += i + 1
	}
}

// utf16Before counts UTF-16 code units in [0, offset). The offset must
// be a character boundary.
func (n *node) utf16Before(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= n.sum.Bytes {
		return n.sum.UTF16
	}

	if n.isLeaf() {
		count := 0
		for _, c := range n.chunks {
			if offset >= c.len() {
				count += c.sum.UTF16
				offset -= c.len()
				continue
			}
			return count + utf16Count(c.text[:offset])
		}
		return count
	}

	count := 0
	for _, child := range n.children {
		if offset >= child.sum.Bytes {
			count += child.sum.UTF16
			offset -= child.sum.Bytes
			continue
		}
		return count + child.utf16Before(offset)
	}
	return count
}

// offsetForUTF16 returns the byte offset for a UTF-16 code unit count.
// A target falling inside a surrogate pair lands on the start of the
// containing character.
func (n *node) offsetForUTF16(target int) int {
	if target <= 0 {
		return 0
	}
	if target >= n.sum.UTF16 {
		return n.sum.Bytes
	}

	base := 0
	for !n.isLeaf() {
		for _, child := range n.children {
			if target < child.sum.UTF16 {
				n = child
				break
			}
			target -= child.sum.UTF16
			base += child.sum.Bytes
		}
	}
	for _, c := range n.chunks {
		if target >= c.sum.UTF16 {
			target -= c.sum.UTF16
			base += c.len()
			continue
		}
		for i, r := range c.text {
			if target < utf16Len(r) {
				return base + i
			}
			target -= utf16Len(r)
		}
		return base + c.len()
	}
	return base
}

// cut splits the subtree at offset, returning trees for [0, offset)
// and [offset, end).
func (n *node) cut(offset int) (*node, *node) {
	if offset <= 0 {
		return newLeaf(nil), n
	}
	if offset >= n.sum.Bytes {
		return n, newLeaf(nil)
	}

	if n.isLeaf() {
		var left, right []chunk
		pos := 0
		for _, c := range n.chunks {
			switch {
			case pos+c.len() <= offset:
				left = append(left, c)
			case pos >= offset:
				right = append(right, c)
			default:
				l, r := c.cut(offset - pos)
				if !l.isEmpty() {
					left = append(left, l)
				}
				if !r.isEmpty() {
					right = append(right, r)
				}
			}
			pos += c.len()
		}
		return newLeaf(left), newLeaf(right)
	}

	var left, right []*node
	pos := 0
	for _, child := range n.children {
		switch {
		case pos+child.sum.Bytes <= offset:
			left = append(left, child)
		case pos >= offset:
			right = append(right, child)
		default:
			l, r := child.cut(offset - pos)
			if l.sum.Bytes > 0 {
				left = append(left, l)
			}
			if r.sum.Bytes > 0 {
				right = append(right, r)
			}
		}
		pos += child.sum.Bytes
	}
	return balance(left), balance(right)
}

// balance builds a tree from an ordered list of subtrees of possibly
// mixed heights by folding them together with join.
func balance(nodes []*node) *node {
	if len(nodes) == 0 {
		return newLeaf(nil)
	}
	result := nodes[0]
	for _, n := range nodes[1:] {
		result = join(result, n)
	}
	return result
}

// join concatenates two subtrees into one.
func join(left, right *node) *node {
	if left == nil || left.sum.Bytes == 0 {
		if right == nil {
			return newLeaf(nil)
		}
		return right
	}
	if right == nil || right.sum.Bytes == 0 {
		return left
	}

	if left.isLeaf() && right.isLeaf() {
		return joinLeaves(left, right)
	}

	for left.height < right.height {
		left = newInternal([]*node{left})
	}
	for right.height < left.height {
		right = newInternal([]*node{right})
	}

	if left.isLeaf() {
		return joinLeaves(left, right)
	}

	all := make([]*node, 0, len(left.children)+len(right.children))
	all = append(all, left.children...)
	all = append(all, right.children...)
	return group(all)
}

func joinLeaves(left, right *node) *node {
	total := len(left.chunks) + len(right.chunks)
	if total <= maxLeafChunks {
		chunks := make([]chunk, 0, total)
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeaf(chunks)
	}
	return newInternal([]*node{left, right})
}

// group packs same-height nodes into internal nodes of bounded arity.
func group(nodes []*node) *node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	if len(nodes) <= maxChildren {
		return newInternal(nodes)
	}
	var parents []*node
	for i := 0; i < len(nodes); i += maxChildren {
		end := min(i+maxChildren, len(nodes))
		parents = append(parents, newInternal(nodes[i:end]))
	}
	return group(parents)
}
