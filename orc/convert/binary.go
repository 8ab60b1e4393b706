package convert

import (
	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

// stringFromBinary hex-dumps the blob: lowercase, bytes separated by
// single spaces.
func stringFromBinary(readerCategory api.Category, maxLength int) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.BytesVector)
		dst := out.(*vector.BytesVector)
		text := binaryToHexString(src.Values[i])
		dst.SetString(i, stringGroupTruncate(text, readerCategory, maxLength))
	}
}
