// Package calc holds the two piecewise integer functions under test.
// Both are pure and safe to call from any number of goroutines.
package calc

// Calculate returns a value chosen by the signs of x and y:
//
//	x > 0,  y > 0   ->  x + y
//	x > 0,  y <= 0  ->  x - y
//	x <= 0, y > 0   -> -x + y
//	x <= 0, y <= 0  -> -x - y
//
// For every input this is |x| + |y|.
func Calculate(x, y int) int {
	result, _ := CalculateTrace(x, y)
	return result
}

// Func applies two guarded blocks to x in order.
// Block 1 runs when a < 9 and b == 5 and sets x to x*a + b.
// Block 2 runs when a > 2 or the (possibly updated) x is above 6 and
// increments x.
func Func(a, b, x int) int {
	result, _ := FuncTrace(a, b, x)
	return result
}

// CalculateTrace is Calculate that also reports the branch taken and the
// outcome of the x > 0 and y > 0 conditions.
func CalculateTrace(x, y int) (int, Trace) {
	xPos := x > 0
	yPos := y > 0

	trace := Trace{
		Conditions: []Condition{
			{Name: CondXPositive, Value: xPos},
			{Name: CondYPositive, Value: yPos},
		},
	}

	switch {
	case xPos && yPos:
		trace.Branches = []Branch{BranchPosPos}
		return x + y, trace
	case xPos && !yPos:
		trace.Branches = []Branch{BranchPosNonPos}
		return x - y, trace
	case !xPos && yPos:
		trace.Branches = []Branch{BranchNonPosPos}
		return -x + y, trace
	default:
		trace.Branches = []Branch{BranchNonPosNonPos}
		return -x - y, trace
	}
}

// FuncTrace is Func that also reports which blocks ran and how each
// atomic condition evaluated. Conditions are recorded without
// short-circuiting so that condition coverage sees every outcome.
func FuncTrace(a, b, x int) (int, Trace) {
	var trace Trace

	aBelow9 := a < 9
	bIs5 := b == 5
	trace.Conditions = append(trace.Conditions,
		Condition{Name: CondALess9, Value: aBelow9},
		Condition{Name: CondBEquals5, Value: bIs5},
	)

	if aBelow9 && bIs5 {
		x = x*a + b
		trace.Branches = append(trace.Branches, BranchBlock1)
	}

	aAbove2 := a > 2
	xAbove6 := x > 6
	trace.Conditions = append(trace.Conditions,
		Condition{Name: CondAGreater2, Value: aAbove2},
		Condition{Name: CondXGreater6, Value: xAbove6},
	)

	if aAbove2 || xAbove6 {
		x++
		trace.Branches = append(trace.Branches, BranchBlock2)
	}

	return x, trace
}
