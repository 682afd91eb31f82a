package cascade

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID identifies a transaction type, category or subcategory.
//
// Form fields carry ids as strings while the catalog endpoints may encode them
// as JSON numbers; both decode to the same ID so comparisons are plain string
// equality.
type ID string

// ParseID normalizes a raw form value into an ID.
func ParseID(raw string) ID {
	return ID(strings.TrimSpace(raw))
}

// IsZero reports whether the id is unset.
func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts strings, numbers and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ParseID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cascade: invalid id %s", data)
	}
	*id = numberID(n)
	return nil
}

// numberID renders integral numbers in plain decimal form so that 1, 1.0 and
// 1e0 all equal the form value "1".
func numberID(n json.Number) ID {
	if i, err := n.Int64(); err == nil {
		return ID(strconv.FormatInt(i, 10))
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return ID(strconv.FormatInt(int64(f), 10))
	}
	return ID(n.String())
}
