package config

import "strings"

const badFileName = "_bad_file_name_"

// CleanFileName removes characters not allowed in file names on this
// platform. Used when output file name is derived from a theme key.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if rejected(sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(out, leadingTrim)
	if len(out) == 0 {
		return badFileName
	}
	return out
}
