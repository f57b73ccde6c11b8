package checkers_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/jasper/internal/checkers"
)

func TestJSONPathEquals(t *testing.T) {
	c := qt.New(t)

	doc := []byte(`{"root":{"path":"/v","source":"workspace"},"args":["foo","bar"],"n":2}`)

	c.Assert(doc, checkers.JSONPathEquals("$.root.source"), "workspace")
	c.Assert(string(doc), checkers.JSONPathEquals("$.root.path"), "/v")
	c.Assert(doc, checkers.JSONPathEquals("$.args[1]"), "bar")
	c.Assert(doc, checkers.JSONPathEquals("$.n"), float64(2))

	c.Run("mismatch is reported", func(c *qt.C) {
		err := checkers.JSONPathEquals("$.root.source").Check(doc, []any{"default"}, func(string, any) {})
		c.Assert(err, qt.IsNotNil)
	})

	c.Run("non JSON input is a bad check", func(c *qt.C) {
		err := checkers.JSONPathEquals("$.x").Check(42, []any{"x"}, func(string, any) {})
		c.Assert(qt.IsBadCheck(err), qt.IsTrue)
	})
}
