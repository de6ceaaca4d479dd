package rule

import (
	"encoding/json"
	"fmt"
)

// fingerprint builds a stable cache key from a rule's structural identity.
// Params is canonicalised via encoding/json, which marshals map keys in
// sorted order — giving a deterministic string for any two maps with equal
// key/value sets regardless of insertion order, without pulling in a
// canonical-JSON library for a handful of scalar parameters.
func fingerprint(op, field string, params map[string]any, negative bool) string {
	canon, err := json.Marshal(params)
	if err != nil {
		// Params containing a non-marshalable value (e.g. a func) fall back
		// to fmt's %#v rendering, which also prints map keys in sorted order
		// and keeps distinct values distinct.
		canon = []byte(fmt.Sprintf("%#v", params))
	}
	neg := "0"
	if negative {
		neg = "1"
	}
	return op + "\x00" + field + "\x00" + string(canon) + "\x00" + neg
}
