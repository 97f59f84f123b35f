package status

import "github.com/ImSingee/go-ex/pp"

// Decorator formats text for display with the color of k.
type Decorator func(text string, k Kind) string

// Plain leaves text untouched.
func Plain(text string, _ Kind) string {
	return text
}

var cyan = pp.GetColor(38, 5, 6)

// Colored is the terminal Decorator.
func Colored(text string, k Kind) string {
	if text == "" {
		return ""
	}

	switch k {
	case Passed:
		return pp.GreenString("%s", text).GetForStdout()
	case Failed:
		return pp.RedString("%s", text).GetForStdout()
	case Undefined, Pending:
		return pp.YellowString("%s", text).GetForStdout()
	case Skipped, SkippedParam:
		return pp.ColorString(cyan, text).GetForStdout()
	}

	return text
}
