package question

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TargetCount is the caller-requested question count. Clients send it as a
// number, a numeric string, or not at all; anything unparseable is treated as
// "not set" so enforcement is skipped instead of running against a garbage
// target. Negative values are likewise ignored.
type TargetCount struct {
	N   int
	Set bool
}

func (c *TargetCount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}

	s = strings.Trim(s, `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil
		}
		n = int(f)
	}
	if n < 0 {
		return nil
	}

	c.N = n
	c.Set = true
	return nil
}

func (c TargetCount) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte("null"), nil
	}
	return json.Marshal(c.N)
}
