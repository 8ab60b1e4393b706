package vector

import "github.com/orcstream/orcgo/orc/api"

// TimestampVector backs TIMESTAMP: seconds since the Unix epoch plus a
// nanosecond remainder, split across two parallel slices.
type TimestampVector struct {
	base
	Seconds []int64
	Nanos   []int32
}

// NewTimestampVector allocates a TimestampVector with capacity n.
func NewTimestampVector(n int) *TimestampVector {
	v := &TimestampVector{}
	v.Resize(n)
	v.Reset(n)
	return v
}

func (v *TimestampVector) Len() int { return len(v.Seconds) }

func (v *TimestampVector) Resize(n int) {
	if cap(v.Seconds) < n {
		grown := make([]int64, n)
		copy(grown, v.Seconds)
		v.Seconds = grown

		grownNanos := make([]int32, n)
		copy(grownNanos, v.Nanos)
		v.Nanos = grownNanos
	}
	v.ensureMaskCap(n)
}

func (v *TimestampVector) Reset(n int) {
	v.Resize(n)
	v.Seconds = v.Seconds[:n]
	v.Nanos = v.Nanos[:n]
	v.resetMask(n)
}

// Get reassembles row i as an api.TimestampValue.
func (v *TimestampVector) Get(i int) api.TimestampValue {
	return api.TimestampValue{Seconds: v.Seconds[i], Nanos: v.Nanos[i]}
}

// Set writes ts at row i and clears its null flag.
func (v *TimestampVector) Set(i int, ts api.TimestampValue) {
	v.Seconds[i] = ts.Seconds
	v.Nanos[i] = ts.Nanos
	v.SetNull(i, false)
}
