// Package selection parses page selection strings such as "2-4,10-" and
// normalizes sets of page intervals into their canonical form.
package selection

import (
	"strconv"
	"strings"

	"github.com/mydehq/pagesel/internal/types"
)

// Parse converts a selection string into a normalized range set.
//
// Tokens are separated by "," and take one of four shapes:
//
//	N       single page [N, N]
//	N1-N2   range [N1, N2]
//	-N      pages [1, N]
//	N-      page N to the end of the document
//
// Blank input yields an empty set. The first invalid token aborts the
// parse with an ErrInvalidNumber, ErrAmbiguousRange or ErrInvalidRange.
func Parse(s string) (types.RangeSet, error) {
	if strings.TrimSpace(s) == "" {
		return types.RangeSet{}, nil
	}

	var raw types.RangeSet
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		iv, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		raw = append(raw, iv)
	}

	return Normalize(raw), nil
}

func parseToken(token string) (types.Interval, error) {
	limits := strings.Split(token, "-")
	for i := range limits {
		limits[i] = strings.TrimSpace(limits[i])
	}

	switch len(limits) {
	case 1:
		page, err := parsePage(limits[0])
		if err != nil {
			return types.Interval{}, err
		}
		return types.NewBounded(page, page)

	case 2:
		from, to := limits[0], limits[1]
		switch {
		case from == "" && to == "":
			return types.Interval{}, types.ErrAmbiguousRange{Token: token}

		case from == "":
			last, err := parsePage(to)
			if err != nil {
				return types.Interval{}, err
			}
			return types.NewBounded(1, last)

		case to == "":
			first, err := parsePage(from)
			if err != nil {
				return types.Interval{}, err
			}
			return types.NewUnbounded(first)
		}

		first, err := parsePage(from)
		if err != nil {
			return types.Interval{}, err
		}
		last, err := parsePage(to)
		if err != nil {
			return types.Interval{}, err
		}
		if last < first {
			return types.Interval{}, types.ErrInvalidRange{Token: token}
		}
		return types.NewBounded(first, last)
	}

	return types.Interval{}, types.ErrAmbiguousRange{Token: token}
}

// parsePage parses a 1-based page number that fits in 32 bits.
func parsePage(text string) (int, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil || n < 1 {
		return 0, types.ErrInvalidNumber{Text: text}
	}
	return int(n), nil
}
