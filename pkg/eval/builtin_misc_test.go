package eval_test

import (
	"testing"

	"src.weir.sh/pkg/eval/errs"
	. "src.weir.sh/pkg/eval/evaltest"
)

func TestEcho(t *testing.T) {
	Test(t,
		That("echo").Puts(),
		That("echo foo").Puts("foo"),
		That("echo 1 2.5 $true $nothing").Puts(1, 2.5, true, nil),
		That("echo 'single quoted' \"tab\\there\"").Puts("single quoted", "tab\there"),
		That("echo [1 [2 3]]").Puts([]any{1, []any{2, 3}}),
	)
}

func TestLet(t *testing.T) {
	Test(t,
		That("let x = 10; $x * 2").Puts(20),
		// A top-level binding persists for the rest of the session.
		That("let x = 10", "$x + 1").Puts(11),
		// Rebinding replaces the value.
		That("let x = 1; let x = 2; $x").Puts(2),
		That("let x = [1 2 3]; $x").Puts([]any{1, 2, 3}),
		// The value may come from a command.
		That("let n = (echo 5); $n + 1").Puts(6),

		That("let x 5").DoesNotCompile("should be the keyword '='"),
		That("let x =").DoesNotCompile(
			"the keyword '=' should be followed by an argument"),
		That("$undefined").DoesNotCompile("variable $undefined not found"),
	)
}

func TestBuildString(t *testing.T) {
	Test(t,
		That("build-string").Puts(""),
		That("build-string a b c").Puts("abc"),
		That("build-string 1 ' and ' 2").Puts("1 and 2"),
		That("build-string 1.5 x $true x $nothing").Puts("1.5xtruex"),
		That("build-string [1]").Throws(errs.BadValue{
			What:  "argument of build-string",
			Valid: "a string, number, boolean or nothing", Actual: "list"}),
	)
}

func TestLength(t *testing.T) {
	Test(t,
		That("length").Puts(0),
		That("echo [1 2 3] | length").Puts(3),
		That("echo a b | length").Puts(2),
		That("echo 5 | length").Puts(1),
		// A range input is counted without being materialized first.
		That("1..100 | length").Puts(100),
		That("1..<100 | length").Puts(99),
	)
}

func TestFirst(t *testing.T) {
	Test(t,
		That("echo [1 2 3 4] | first 2").Puts(1, 2),
		That("echo [1 2] | first 5").Puts(1, 2),
		That("echo [1 2] | first 0").Puts(),
		That("1.. | first 3").Puts(1, 2, 3),
		That("first x").Throws(errs.BadValue{
			What: "count", Valid: "an integer", Actual: "string"}),
		That("first -1").Throws(errs.BadValue{
			What: "count", Valid: "a non-negative number", Actual: "-1"}),
	)
}
