package strutil

import (
	"testing"

	"src.weir.sh/pkg/tt"
)

func TestTitle(t *testing.T) {
	tt.Test(t, tt.Fn("Title", Title), tt.Table{
		tt.Args("").Rets(""),
		tt.Args("foo").Rets("Foo"),
		tt.Args("\xf0").Rets("\xf0"),
		tt.Args("FOO").Rets("FOO"),
	})
}
