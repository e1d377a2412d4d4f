package api

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is an entity id in a request body. It accepts both 1 and "1".
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("id %s is not an integer", b)
	}
	*id = ID(v)
	return nil
}

// Int64Ptr converts an optional id.
func (id *ID) Int64Ptr() *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}
