package gadget

// RandomAccess returns the index'th element of items, where the index may
// be a dynamic expression. The result is 0 for out-of-range indices that
// still fit in the bits needed to address len(items) items; pair with
// AssertLt to prohibit them. Larger indices make execution fail.
func (b *GadgetBuilder) RandomAccess(items []Expression, index Expression) Expression {
	// number of bits needed to encode the index
	bits := 0
	for 1<<bits < len(items) {
		bits++
	}

	indexBinary := b.Split(index, bits)
	return b.randomAccessBinary(items, indexBinary.Bits)
}

// randomAccessBinary filters the deepest layer of an imagined binary tree
// of the items with the least significant index bit, then recurses until
// a single value remains. A node without a right sibling is paired with an
// implicit zero, so indices past the end select 0.
func (b *GadgetBuilder) randomAccessBinary(items []Expression, indexBits []BooleanExpression) Expression {
	if len(items) == 1 {
		return items[0]
	}

	lsb := indexBits[0]
	numParents := (len(items) + 1) / 2
	parentLayer := make([]Expression, 0, numParents)
	for parentIndex := 0; parentIndex < numParents; parentIndex++ {
		leftChildIndex := parentIndex * 2
		rightChildIndex := leftChildIndex + 1
		if rightChildIndex == len(items) {
			parentLayer = append(parentLayer,
				b.Selection(lsb, ZeroExpression(), items[leftChildIndex]))
		} else {
			parentLayer = append(parentLayer,
				b.Selection(lsb, items[rightChildIndex], items[leftChildIndex]))
		}
	}

	return b.randomAccessBinary(parentLayer, indexBits[1:])
}
