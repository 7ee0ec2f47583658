package vmerror

// SourceMap resolves a bytecode program counter back to a
// developer-authored revert string, e.g. a dev comment placed on the
// reverting source line. It is the seam to the build/source-map layer.
//
// Implementations must be pure functions of the program counter and must
// report a miss through the bool, never through a panic: absence of
// source information is an expected outcome. The program counter may be
// nil when the node's trace did not include one.
type SourceMap interface {
	DevRevert(pc *int) (string, bool)
}

func lookupDevRevert(sm SourceMap, pc *int) (string, bool) {
	if sm == nil {
		return "", false
	}
	return sm.DevRevert(pc)
}
