package middlewares

import (
	"strconv"
	"strings"
)

type mediaRange struct {
	kind    string
	subtype string
	quality float64
}

func (m mediaRange) specificity(kind string, subtype string) int {
	switch {
	case m.kind == kind && m.subtype == subtype:
		return 2
	case m.kind == kind && m.subtype == "*":
		return 1
	case m.kind == "*" && m.subtype == "*":
		return 0
	}
	return -1
}

func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for _, part := range strings.Split(header, ",") {
		params := strings.Split(part, ";")
		media := strings.ToLower(strings.TrimSpace(params[0]))
		if media == "" {
			continue
		}
		if media == "*" {
			media = "*/*"
		}
		kind, subtype, ok := strings.Cut(media, "/")
		if !ok || kind == "" || subtype == "" {
			continue
		}

		r := mediaRange{kind: kind, subtype: subtype, quality: 1}
		for _, param := range params[1:] {
			name, value, _ := strings.Cut(strings.TrimSpace(param), "=")
			if strings.ToLower(strings.TrimSpace(name)) != "q" {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || q < 0 || q > 1 {
				q = 0
			}
			r.quality = q
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// jsonSuffixSpecificity ranks how closely the range matches application/*+json
func (m mediaRange) jsonSuffixSpecificity() int {
	switch {
	case m.kind == "application" && strings.HasSuffix(m.subtype, "+json"):
		return 2
	case m.kind == "application" && m.subtype == "*":
		return 1
	case m.kind == "*" && m.subtype == "*":
		return 0
	}
	return -1
}

// quality is the weight of the most specific range by rank.
// Among equally specific ranges the highest weight wins.
func quality(ranges []mediaRange, rank func(mediaRange) int) float64 {
	best, q := -1, 0.0
	for _, r := range ranges {
		s := rank(r)
		if s < 0 {
			continue
		}
		if s > best || (s == best && r.quality > q) {
			best, q = s, r.quality
		}
	}
	return q
}

// AcceptsJSON reports whether an Accept header admits a JSON response.
// A blank header admits anything.
func AcceptsJSON(header string) bool {
	if strings.TrimSpace(header) == "" {
		return true
	}

	ranges := parseAccept(header)
	exact := func(r mediaRange) int { return r.specificity("application", "json") }
	return quality(ranges, exact) > 0 || quality(ranges, mediaRange.jsonSuffixSpecificity) > 0
}
