// SPDX-License-Identifier: MIT

package segment

import "errors"

// ErrInvalidPartition is returned when a partition cannot be planned
// (worker count or column count below 1) or when a segment set does not
// cover [0, W) exactly once.
var ErrInvalidPartition = errors.New("segment: invalid partition")
