// SPDX-License-Identifier: EPL-2.0

package convert

import "fmt"

// Progress is one periodic progress notification of a running job. Percent
// is derived from bytes read off the input versus its total size, sampled
// once every progress interval, so it is a heuristic rather than an exact
// frame count.
type Progress struct {
	Percent float64
	Packets int
}

func (p Progress) String() string {
	return fmt.Sprintf("%.1f%%", p.Percent)
}

// Result is the single terminal notification of a job. OutputPath is set on
// success; Err carries the failure otherwise.
type Result struct {
	OutputPath string
	Err        error
}
