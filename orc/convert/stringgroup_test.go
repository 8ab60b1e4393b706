package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orcstream/orcgo/orc/api"
)

func TestStringGroupTruncateCharTrimsThenTruncates(test *testing.T) {
	got := stringGroupTruncate("hi   ", api.Char, 10)
	assert.Equal(test, "hi", got)
}

func TestStringGroupTruncateVarcharDoesNotTrim(test *testing.T) {
	got := stringGroupTruncate("hi   ", api.Varchar, 10)
	assert.Equal(test, "hi   ", got)
}

func TestStringGroupTruncateStringPassesThrough(test *testing.T) {
	got := stringGroupTruncate("  untouched  ", api.String, 4)
	assert.Equal(test, "  untouched  ", got)
}

func TestUtf8TruncateDoesNotSplitCodePoint(test *testing.T) {
	// "日本語" is three 3-byte code points; truncating to 2 code points
	// must yield exactly the first two characters, never a partial one.
	s := "日本語"
	got := utf8Truncate(s, 2)
	assert.Equal(test, "日本", got)
	assert.Equal(test, 6, len(got))
}

func TestUtf8TruncateShorterThanLimit(test *testing.T) {
	got := utf8Truncate("ab", 10)
	assert.Equal(test, "ab", got)
}

func TestUtf8TruncateZeroOrNegative(test *testing.T) {
	assert.Equal(test, "", utf8Truncate("abc", 0))
	assert.Equal(test, "", utf8Truncate("abc", -1))
}

func TestCharTruncateMultiByteBoundary(test *testing.T) {
	got := stringGroupTruncate("日本語テスト", api.Char, 3)
	assert.Equal(test, "日本語", got)
	assert.True(test, strings.HasPrefix("日本語テスト", got))
}

func TestBinaryToHexString(test *testing.T) {
	assert.Equal(test, "", binaryToHexString(nil))
	assert.Equal(test, "", binaryToHexString([]byte{}))
	assert.Equal(test, "aa", binaryToHexString([]byte{0xaa}))
	assert.Equal(test, "de ad be ef", binaryToHexString([]byte{0xde, 0xad, 0xbe, 0xef}))
}

func TestBinaryToHexStringExactLength(test *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	got := binaryToHexString(b)
	assert.Equal(test, 3*len(b)-1, len(got))
}
