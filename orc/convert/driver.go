package convert

import "github.com/orcstream/orcgo/orc/vector"

// ConvertVector is the vectorized driver every conversion reader shares.
// It resets output to batch size n, then walks
// input's null mask, invoking convertElement(i) on every row that needs
// one and propagating nulls and the repeating-vector compression
// unchanged otherwise. convertElement is responsible for writing
// output's value at i, and may itself null the slot (a conversion
// failure, not an input null).
func ConvertVector(input, output vector.Vector, convertElement func(i int)) {
	n := input.Len()
	output.Reset(n)

	if input.IsRepeating() {
		output.SetRepeating(true)
		if input.NoNulls() || !input.IsNull(0) {
			convertElement(0)
		} else {
			output.SetNoNulls(false)
			output.SetNull(0, true)
		}
		return
	}

	if input.NoNulls() {
		for i := 0; i < n; i++ {
			convertElement(i)
		}
		return
	}

	for i := 0; i < n; i++ {
		if input.IsNull(i) {
			output.SetNull(i, true)
		} else {
			convertElement(i)
		}
	}
}
