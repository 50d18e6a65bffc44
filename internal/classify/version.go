package classify

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// CompareVersions orders solver version strings so that "2.10" sorts after
// "2.9". Versions that parse as semver (with or without the leading "v") are
// compared as such; anything else falls back to a dot-separated numeric
// compare, then to a plain string compare.
func CompareVersions(a, b string) int {
	sa, sb := canonical(a), canonical(b)
	if sa != "" && sb != "" {
		if c := semver.Compare(sa, sb); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}
	if c, ok := compareSegments(a, b); ok && c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// compareSegments compares dot-separated integer segments. ok is false when a
// segment is not an integer.
func compareSegments(a, b string) (int, bool) {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var x, y int
		var err error
		if i < len(as) {
			if x, err = strconv.Atoi(as[i]); err != nil {
				return 0, false
			}
		}
		if i < len(bs) {
			if y, err = strconv.Atoi(bs[i]); err != nil {
				return 0, false
			}
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
	}
	return 0, true
}
