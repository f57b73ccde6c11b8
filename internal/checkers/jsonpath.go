// Package checkers provides quicktest checkers shared by the test suites.
package checkers

import (
	"encoding/json"
	"errors"
	"reflect"

	qt "github.com/frankban/quicktest"
	"github.com/yalp/jsonpath"
)

// JSONPathEquals returns a checker that decodes the JSON document passed as
// got ([]byte or string), reads the value at path and compares it to want.
//
//	c.Assert(out, checkers.JSONPathEquals("$.source"), "override")
func JSONPathEquals(path string) qt.Checker {
	return &jsonPathChecker{path: path}
}

type jsonPathChecker struct {
	path string
}

func (c *jsonPathChecker) ArgNames() []string {
	return []string{"got", "want"}
}

func (c *jsonPathChecker) Check(got any, args []any, note func(key string, value any)) error {
	var data []byte
	switch v := got.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return qt.BadCheckf("first argument is not a JSON document (%T)", got)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return qt.BadCheckf("cannot decode JSON: %v", err)
	}

	note("path", c.path)
	val, err := jsonpath.Read(doc, c.path)
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(val, args[0]) {
		note("value", val)
		return errors.New("value at path does not match")
	}
	return nil
}
