package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvpar/matrix"
	"github.com/katalvlaran/lvpar/segment"
)

// ExampleDense_SplitColumns cuts disjoint column windows and mutates one of them.
func ExampleDense_SplitColumns() {
	m, _ := matrix.NewDense(2, 5)
	segs, _ := segment.Plan(5, 2)
	views, err := m.SplitColumns(segs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = views[1].AddScalar(1)
	fmt.Print(m)
	// Output:
	// [0, 0, 1, 1, 1]
	// [0, 0, 1, 1, 1]
}

// ExampleDense_CopyColumns shows the copy-then-merge round trip.
func ExampleDense_CopyColumns() {
	m, _ := matrix.NewDense(2, 3)
	seg := segment.Segment{Start: 1, End: 3}
	priv, _ := m.CopyColumns(seg)
	_ = priv.FullView().AddScalar(7)
	_ = m.WriteColumns(seg, priv)
	fmt.Print(m)
	// Output:
	// [0, 7, 7]
	// [0, 7, 7]
}
