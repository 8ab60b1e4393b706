package convert

import "github.com/orcstream/orcgo/orc/api"

// rank orders the numeric categories so a down-cast can be recognized by
// comparison alone: BOOLEAN < BYTE < SHORT < INT < LONG < FLOAT < DOUBLE
// < DECIMAL.
var rank = [...]int{
	api.Boolean: 0,
	api.Byte:    1,
	api.Short:   2,
	api.Int:     3,
	api.Long:    4,
	api.Float:   5,
	api.Double:  6,
	api.Decimal: 7,
}

// rankOf returns c's position in the numeric ordering. Categories outside
// the numeric family are not meaningfully ranked; callers only call this
// for BOOLEAN..DECIMAL.
func rankOf(c api.Category) int {
	return rank[c]
}

// isNarrowing reports whether converting from `from` to `to` is a
// numeric down-cast requiring a range check.
func isNarrowing(from, to api.Category) bool {
	return rankOf(to) < rankOf(from)
}
