package normalization

import (
	"math/rand/v2"
	"strconv"

	"github.com/gosimple/slug"
)

// slugSuffixSpace is 36^6, so suffixes are at most six base-36 digits.
const slugSuffixSpace = 36 * 36 * 36 * 36 * 36 * 36

// GenerateSlug turns a title into a lowercase hyphenated slug followed by
// a random base-36 suffix. It is not unique by construction; the store's
// unique index on slug is the arbiter.
func GenerateSlug(title string) string {
	return SlugWithSuffix(title, rand.Int64N(slugSuffixSpace))
}

// SlugWithSuffix is GenerateSlug with an explicit suffix value.
func SlugWithSuffix(title string, n int64) string {
	if n < 0 {
		n = -n
	}
	suffix := strconv.FormatInt(n%slugSuffixSpace, 36)
	base := slug.Make(title)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
