// SPDX-License-Identifier: MIT

package worker

// Run applies Rounds() elementwise increments of 1.0 to the plan's view.
//
// Behavior highlights:
//   - Tight compute loop, no synchronization, no allocation.
//   - Never reads or writes outside the view.
//   - An empty view returns immediately.
//
// A failing kernel is a broken invariant (NewPlan already checked the view),
// so Run panics; the orchestrator recovers it as a failed worker.
//
// Complexity:
//   - Time O(Rounds()*rows*cols), Space O(1).
func Run(p Plan) {
	if p.view == nil || p.view.Cols() == 0 {
		return
	}
	for k := 1; k < p.iterations; k++ {
		if err := p.view.AddScalar(1); err != nil {
			panic(err)
		}
	}
}
