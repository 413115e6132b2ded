package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// Values returns the fields of e keyed by their json name, which equals the form name.
// Whole numbers come back as int64.
func Values(e any) map[string]any {
	raw, err := json.Marshal(e)
	if err != nil {
		return map[string]any{}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return map[string]any{}
	}

	return lo.MapValues(m, func(v any, _ string) any {
		if n, ok := v.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				return i
			}
		}

		return v
	})
}

// Strings formats Values(e) for html inputs.
func Strings(e any) map[string]string {
	return lo.MapValues(Values(e), func(v any, _ string) string {
		return Format(v)
	})
}

// Format renders a single value for a list cell or an input.
func Format(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts.Format("2006-01-02 15:04")
		}

		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case map[string]any:
		// belongs-to association, show its name
		if name, ok := t["name"]; ok {
			return Format(name)
		}

		return ""
	default:
		return fmt.Sprint(t)
	}
}
