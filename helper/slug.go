package helper

import (
	gosimpleslug "github.com/gosimple/slug"
)

// Slugify normalizes a title into a unique, URL-safe identifier. Two titles
// that normalize identically produce the same slug; uniqueness is enforced
// where articles are created and retitled.
func Slugify(title string) string {
	return gosimpleslug.Make(title)
}
