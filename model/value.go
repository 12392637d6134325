package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Value is an answer to a single question: either one string or an ordered
// list of strings. The two shapes are resolved once, at decode time, instead
// of being re-guessed by every consumer.
type Value struct {
	str    string
	list   []string
	isList bool
}

func String(s string) Value {
	return Value{str: s}
}

func List(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{list: items, isList: true}
}

func (v Value) IsList() bool {
	return v.isList
}

// Text returns the scalar form of the value. For a list it is empty.
func (v Value) Text() string {
	return v.str
}

// Items returns the list form of the value. For a scalar it is nil.
func (v Value) Items() []string {
	return v.list
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.list)
	}
	return json.Marshal(v.str)
}

var errValueShape = errors.New("answer value must be a string or an array of strings")

func (v *Value) UnmarshalJSON(data []byte) error {
	tok := bytes.TrimSpace(data)

	// A bare null would otherwise decode as a no-op and pass for an empty
	// string.
	if bytes.Equal(tok, []byte("null")) {
		return errValueShape
	}

	if len(tok) > 0 && tok[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(tok, &raw); err != nil {
			return errValueShape
		}
		items := make([]string, len(raw))
		for i, el := range raw {
			el = bytes.TrimSpace(el)
			if len(el) == 0 || el[0] != '"' {
				return errValueShape
			}
			if err := json.Unmarshal(el, &items[i]); err != nil {
				return errValueShape
			}
		}
		*v = List(items...)
		return nil
	}

	var s string
	if err := json.Unmarshal(tok, &s); err != nil {
		return errValueShape
	}
	*v = String(s)
	return nil
}
