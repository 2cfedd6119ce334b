package search

import (
	"math"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// node is a position in a decoded engine response. Every accessor reports
// whether the value exists with the expected type, so navigation never panics
// on unexpected shapes.
type node struct {
	r gjson.Result
}

func parseNode(body []byte) (node, bool) {
	if !gjson.ValidBytes(body) {
		return node{}, false
	}
	return node{r: gjson.ParseBytes(body)}, true
}

// field returns the child under key. Keys are literal, not gjson paths.
func (n node) field(key string) (node, bool) {
	if !n.r.IsObject() {
		return node{}, false
	}
	var (
		out   gjson.Result
		found bool
	)
	n.r.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			out, found = v, true
			return false
		}
		return true
	})
	return node{r: out}, found
}

// path follows keys one object level at a time.
func (n node) path(keys ...string) (node, bool) {
	cur := n
	for _, k := range keys {
		next, ok := cur.field(k)
		if !ok {
			return node{}, false
		}
		cur = next
	}
	return cur, true
}

func (n node) isObject() bool { return n.r.IsObject() }

func (n node) array() ([]node, bool) {
	if !n.r.IsArray() {
		return nil, false
	}
	items := n.r.Array()
	out := make([]node, len(items))
	for i, it := range items {
		out[i] = node{r: it}
	}
	return out, true
}

func (n node) str() (string, bool) {
	if n.r.Type != gjson.String {
		return "", false
	}
	return n.r.Str, true
}

func (n node) boolean() (bool, bool) {
	switch n.r.Type {
	case gjson.True:
		return true, true
	case gjson.False:
		return false, true
	}
	return false, false
}

// count returns a non-negative integer. Floats are accepted only when they
// carry no fractional part.
func (n node) count() (int64, bool) {
	if n.r.Type != gjson.Number {
		return 0, false
	}
	if v, err := strconv.ParseInt(n.r.Raw, 10, 64); err == nil {
		if v < 0 {
			return 0, false
		}
		return v, true
	}
	f := n.r.Num
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// timestamp parses a string date. Dates without an offset are read as UTC.
func (n node) timestamp() (time.Time, bool) {
	s, ok := n.str()
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
