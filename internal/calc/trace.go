package calc

import "strings"

// Branch names a block of code that a call may enter.
type Branch string

// Branches of Calculate, one per sign combination.
const (
	BranchPosPos       Branch = "pos-pos"
	BranchPosNonPos    Branch = "pos-nonpos"
	BranchNonPosPos    Branch = "nonpos-pos"
	BranchNonPosNonPos Branch = "nonpos-nonpos"
)

// Guarded blocks of Func.
const (
	BranchBlock1 Branch = "block1"
	BranchBlock2 Branch = "block2"
)

// PathNone is the rendered path of a Func call that entered no block.
const PathNone = "none"

// PathSeparator joins branches in a rendered path. NormalizePath also
// accepts the ASCII form "->".
const PathSeparator = "→"

// Atomic condition names.
const (
	CondXPositive = "x>0"
	CondYPositive = "y>0"
	CondALess9    = "a<9"
	CondBEquals5  = "b==5"
	CondAGreater2 = "a>2"
	CondXGreater6 = "x>6"
)

// Condition is the outcome of one atomic predicate during a call.
type Condition struct {
	Name  string
	Value bool
}

// Trace records what a single call executed.
type Trace struct {
	Branches   []Branch
	Conditions []Condition
}

// Path renders the entered branches joined by an arrow, or PathNone.
func (t Trace) Path() string {
	if len(t.Branches) == 0 {
		return PathNone
	}

	parts := make([]string, 0, len(t.Branches))
	for _, b := range t.Branches {
		parts = append(parts, string(b))
	}

	return strings.Join(parts, PathSeparator)
}

// NormalizePath rewrites a hand-written path such as "block1 -> block2"
// into the form Path renders.
func NormalizePath(path string) string {
	parts := strings.Split(strings.ReplaceAll(path, "->", PathSeparator), PathSeparator)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return strings.Join(parts, PathSeparator)
}

// Entered reports whether the call went through branch b.
func (t Trace) Entered(b Branch) bool {
	for _, got := range t.Branches {
		if got == b {
			return true
		}
	}

	return false
}

// CalculateBranches lists every branch of Calculate in source order.
func CalculateBranches() []Branch {
	return []Branch{BranchPosPos, BranchPosNonPos, BranchNonPosPos, BranchNonPosNonPos}
}

// FuncBranches lists every block of Func in source order.
func FuncBranches() []Branch {
	return []Branch{BranchBlock1, BranchBlock2}
}

// CalculateConditions lists the atomic conditions of Calculate.
func CalculateConditions() []string {
	return []string{CondXPositive, CondYPositive}
}

// FuncConditions lists the atomic conditions of Func in evaluation order.
func FuncConditions() []string {
	return []string{CondALess9, CondBEquals5, CondAGreater2, CondXGreater6}
}
