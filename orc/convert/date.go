package convert

import (
	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

// stringFromDate renders the day as "YYYY-MM-DD".
func stringFromDate(readerCategory api.Category, maxLength int) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.LongVector)
		dst := out.(*vector.BytesVector)
		text := api.DateFromDays(int32(src.Values[i])).String()
		dst.SetString(i, stringGroupTruncate(text, readerCategory, maxLength))
	}
}

// timestampFromDate produces the day count's midnight instant.
func timestampFromDate() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.LongVector)
		dst := out.(*vector.TimestampVector)
		millis := daysToMillis(int32(src.Values[i]))
		dst.Set(i, api.TimestampValue{Seconds: millisToSeconds(millis), Nanos: 0})
	}
}
