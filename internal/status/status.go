package status

import (
	"fmt"

	"github.com/ImSingee/go-ex/ee"
)

// Kind is the outcome attached to one rendered unit.
//
// None is the zero value and means "no status of its own"; it is never a
// real execution outcome.
type Kind uint8

const (
	None Kind = iota
	Passed
	Failed
	Undefined
	Pending
	Skipped
	// SkippedParam only marks outline table header cells
	SkippedParam
)

// Reported lists every kind the summary counts, in the order it prints them.
var Reported = []Kind{Failed, Skipped, Undefined, Pending, Passed}

func (k Kind) String() string {
	switch k {
	case None:
		return ""
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Undefined:
		return "undefined"
	case Pending:
		return "pending"
	case Skipped:
		return "skipped"
	case SkippedParam:
		return "skipped_param"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func Parse(s string) (Kind, error) {
	switch s {
	case "":
		return None, nil
	case "passed":
		return Passed, nil
	case "failed":
		return Failed, nil
	case "undefined":
		return Undefined, nil
	case "pending":
		return Pending, nil
	case "skipped":
		return Skipped, nil
	case "skipped_param":
		return SkippedParam, nil
	}

	return None, ee.Errorf("unknown status %q", s)
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Reportable reports whether k may reach the summary.
func Reportable(k Kind) bool {
	switch k {
	case Passed, Failed, Undefined, Pending, Skipped:
		return true
	}
	return false
}

// Glyph returns the progress symbol of k. SkippedParam has no symbol.
//
// It panics for None and unknown kinds: callers must resolve a status
// before asking for its glyph.
func Glyph(k Kind) string {
	switch k {
	case Passed:
		return "."
	case Failed:
		return "F"
	case Undefined:
		return "U"
	case Pending:
		return "P"
	case Skipped:
		return "-"
	case SkippedParam:
		return ""
	}

	panic(fmt.Sprintf("status: no glyph for %v", k))
}

// Worse reports whether a should win over b when folding step statuses
// into one scenario status.
func Worse(a, b Kind) bool {
	return rank(a) > rank(b)
}

func rank(k Kind) int {
	switch k {
	case Failed:
		return 5
	case Undefined:
		return 4
	case Pending:
		return 3
	case Skipped:
		return 2
	case Passed:
		return 1
	}
	return 0
}
