package bench

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Columns are the headings matching Row.
var Columns = []string{"ALGORITHM", "N", "NS/OP", "NS/(N·LOG N)"}

// Row formats r as table cells under Columns.
func (r Result) Row() []string {
	return []string{
		r.Algorithm,
		humanize.Comma(int64(r.N)),
		humanize.Comma(r.PerOp.Nanoseconds()),
		fmt.Sprintf("%.2f", r.PerNLogN()),
	}
}
