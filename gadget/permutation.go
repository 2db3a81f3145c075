package gadget

import (
	"fmt"
	"sort"

	"github.com/0xPolygonZero/r1cs/field"
)

// AssertPermutation asserts that two equal-length lists of expressions
// evaluate to permutations of one another.
//
// This is implemented with an AS-Waksman permutation network; see "On
// Arbitrary Waksman Networks and their Vulnerability". Each 2×2 switch
// costs one boolean wire and one product constraint, and a generator
// solves the switch settings from the evaluated input and target lists.
func (b *GadgetBuilder) AssertPermutation(xs, ys []Expression) {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("permutation must have the same number of inputs (%d) and outputs (%d)",
			len(xs), len(ys)))
	}

	switch n := len(xs); n {
	case 0:
		// two empty lists are trivially permutations of one another
	case 1:
		b.AssertEqual(xs[0], ys[0])
	case 2:
		b.assertPermutation2x2(xs[0], xs[1], ys[0], ys[1])
	default:
		b.assertPermutationRecursive(xs, ys)
	}
}

// createSwitch returns a boolean switch wire and the two outputs of a 2×2
// switch over the given inputs. The outputs keep the input order when the
// switch is 0 and swap it when the switch is 1.
func (b *GadgetBuilder) createSwitch(x, y Expression) (BooleanWire, Expression, Expression) {
	sw := b.BooleanWire()
	c := b.Selection(FromBooleanWire(b.fld, sw), y, x)
	d := x.Add(y).Sub(c)
	return sw, c, d
}

// assertPermutation2x2 asserts that [x1, x2] is a permutation of
// [y1, y2].
func (b *GadgetBuilder) assertPermutation2x2(x1, x2, y1, y2 Expression) {
	sw, c, d := b.createSwitch(x1, x2)
	b.AssertEqual(y1, c)
	b.AssertEqual(y2, d)

	deps := concatWires(x1.Dependencies(), x2.Dependencies(),
		y1.Dependencies(), y2.Dependencies())
	b.AddGenerator(deps, func(values *WireValues) error {
		x1v, err := x1.Evaluate(values)
		if err != nil {
			return err
		}
		x2v, err := x2.Evaluate(values)
		if err != nil {
			return err
		}
		y1v, err := y1.Evaluate(values)
		if err != nil {
			return err
		}
		y2v, err := y2.Evaluate(values)
		if err != nil {
			return err
		}
		switch {
		case x1v.Equal(y1v) && x2v.Equal(y2v):
			return values.SetBoolean(sw, false)
		case x1v.Equal(y2v) && x2v.Equal(y1v):
			return values.SetBoolean(sw, true)
		default:
			return fmt.Errorf("no permutation from [%s, %s] to [%s, %s]",
				x1v, x2v, y1v, y2v)
		}
	})
}

func (b *GadgetBuilder) assertPermutationRecursive(xs, ys []Expression) {
	n := len(xs)
	even := n%2 == 0

	var child1X, child1Y, child2X, child2Y []Expression

	// See Figure 8 in the AS-Waksman paper.
	xNumSwitches := n / 2
	yNumSwitches := xNumSwitches
	if even {
		yNumSwitches--
	}

	var xSwitches, ySwitches []BooleanWire
	for i := 0; i < xNumSwitches; i++ {
		sw, out1, out2 := b.createSwitch(xs[i*2], xs[i*2+1])
		xSwitches = append(xSwitches, sw)
		child1X = append(child1X, out1)
		child2X = append(child2X, out2)
	}
	for i := 0; i < yNumSwitches; i++ {
		sw, out1, out2 := b.createSwitch(ys[i*2], ys[i*2+1])
		ySwitches = append(ySwitches, sw)
		child1Y = append(child1Y, out1)
		child2Y = append(child2Y, out2)
	}

	if even {
		child1Y = append(child1Y, ys[n-2])
		child2Y = append(child2Y, ys[n-1])
	} else {
		child2X = append(child2X, xs[n-1])
		child2Y = append(child2Y, ys[n-1])
	}

	b.AssertPermutation(child1X, child1Y)
	b.AssertPermutation(child2X, child2Y)

	deps := make([]Wire, 0)
	for _, e := range xs {
		deps = append(deps, e.Dependencies()...)
	}
	for _, e := range ys {
		deps = append(deps, e.Dependencies()...)
	}

	xsCopy := append([]Expression(nil), xs...)
	ysCopy := append([]Expression(nil), ys...)
	b.AddGenerator(deps, func(values *WireValues) error {
		xVals := make([]field.Element, n)
		yVals := make([]field.Element, n)
		for i := 0; i < n; i++ {
			var err error
			if xVals[i], err = xsCopy[i].Evaluate(values); err != nil {
				return err
			}
			if yVals[i], err = ysCopy[i].Evaluate(values); err != nil {
				return err
			}
		}
		return route(xVals, yVals, xSwitches, ySwitches, values)
	})
}

// pairLists matches each input index to a target index holding the same
// value, duplicates paired in order. It fails if the lists are not
// permutations of one another.
func pairLists(xVals, yVals []field.Element) (xToY, yToX []int, err error) {
	n := len(xVals)
	byValue := make(map[string][]int, n)
	for j := n - 1; j >= 0; j-- {
		key := yVals[j].String()
		byValue[key] = append(byValue[key], j)
	}
	xToY = make([]int, n)
	yToX = make([]int, n)
	for i, v := range xVals {
		key := v.String()
		queue := byValue[key]
		if len(queue) == 0 {
			return nil, nil, fmt.Errorf("%s appears more often in the input than in the target", v)
		}
		j := queue[len(queue)-1]
		byValue[key] = queue[:len(queue)-1]
		xToY[i] = j
		yToX[j] = i
	}
	return xToY, yToX, nil
}

// route generates switch settings for a single layer of the recursive
// network. Wires routed to a subnetwork on one side but not yet the other
// are tracked per side; false means the top subnetwork, true the bottom.
func route(xVals, yVals []field.Element,
	xSwitches, ySwitches []BooleanWire, values *WireValues) error {

	n := len(xVals)
	even := n%2 == 0
	xToY, yToX, err := pairLists(xVals, yVals)
	if err != nil {
		return err
	}
	switches := [2][]BooleanWire{xSwitches, ySwitches}

	otherIndex := func(side, i int) int {
		if side == 0 {
			return xToY[i]
		}
		return yToX[i]
	}

	partialRoutes := [2]map[int]bool{make(map[int]bool), make(map[int]bool)}

	enqueueOtherSide := func(side, thisI int, subnet bool) error {
		otherSide := 1 - side
		otherI := otherIndex(side, thisI)
		otherSwitchI := otherI / 2
		if otherSwitchI >= len(switches[otherSide]) {
			// the other wire doesn't go through a switch
			return nil
		}
		if values.Contains(switches[otherSide][otherSwitchI].Wire()) {
			// the other switch has already been routed
			return nil
		}
		otherISibling := 4*otherSwitchI + 1 - otherI
		if siblingSubnet, ok := partialRoutes[otherSide][otherISibling]; ok {
			// the sibling wire is already pending; the two inputs of a
			// switch must go to opposite subnetworks
			if siblingSubnet == subnet {
				return fmt.Errorf("conflicting subnetwork routing at switch %d", otherSwitchI)
			}
			return nil
		}
		if oldSubnet, ok := partialRoutes[otherSide][otherI]; ok {
			if oldSubnet != subnet {
				return fmt.Errorf("conflicting subnetwork routing for wire %d", otherI)
			}
			return nil
		}
		partialRoutes[otherSide][otherI] = subnet
		return nil
	}

	routeSwitch := func(side, switchIndex int, swap bool) error {
		if err := values.SetBoolean(switches[side][switchIndex], swap); err != nil {
			return err
		}
		// enqueue the two wires on the other side of the network
		thisI1 := switchIndex * 2
		if err := enqueueOtherSide(side, thisI1, swap); err != nil {
			return err
		}
		return enqueueOtherSide(side, thisI1+1, !swap)
	}

	// See Figure 8 in the AS-Waksman paper.
	if even {
		if err := enqueueOtherSide(1, n-2, false); err != nil {
			return err
		}
		if err := enqueueOtherSide(1, n-1, true); err != nil {
			return err
		}
	} else {
		if err := enqueueOtherSide(0, n-1, true); err != nil {
			return err
		}
		if err := enqueueOtherSide(1, n-1, true); err != nil {
			return err
		}
	}

	// Alternate between the two switch layers, routing pending wires
	// first and otherwise scanning top-down for a switch that has not
	// been routed; for such a switch either setting works.
	scanIndex := [2]int{}
	for scanIndex[0] < len(switches[0]) || scanIndex[1] < len(switches[1]) {
		for side := 0; side <= 1; side++ {
			if len(partialRoutes[side]) > 0 {
				pending := partialRoutes[side]
				partialRoutes[side] = make(map[int]bool)
				keys := make([]int, 0, len(pending))
				for k := range pending {
					keys = append(keys, k)
				}
				sort.Ints(keys)
				for _, thisI := range keys {
					subnet := pending[thisI]
					firstSwitchInput := thisI%2 == 0
					swap := firstSwitchInput == subnet
					if err := routeSwitch(side, thisI/2, swap); err != nil {
						return err
					}
				}
			} else {
				for scanIndex[side] < len(switches[side]) &&
					values.Contains(switches[side][scanIndex[side]].Wire()) {
					scanIndex[side]++
				}
				if scanIndex[side] < len(switches[side]) {
					if err := routeSwitch(side, scanIndex[side], false); err != nil {
						return err
					}
					scanIndex[side]++
				}
			}
		}
	}
	return nil
}
