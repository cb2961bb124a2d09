package contracts

import (
	"testing"

	"github.com/adamluzsi/testcase"
)

// Interface represents a behavioural specification, also known as "contract".
//
// A contract keeps the expectations towards an implementation at a high level,
// focusing on the behaviour instead of the implementation details,
// so the same suite can verify both the toolkit of this module
// and any external Sequence or Iterator implementation.
type Interface interface {
	// Spec lets the contract merge into an ongoing spec as a sub context.
	Spec(s *testcase.Spec)
	// Test runs the contract as a standalone test.
	Test(t *testing.T)
	// Benchmark runs the contract as a benchmark.
	Benchmark(b *testing.B)
}

var (
	_ Interface = Iterator[any]{}
	_ Interface = Sequence[any]{}
)
