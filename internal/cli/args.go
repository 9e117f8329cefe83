package cli

import (
	"fmt"
	"strconv"

	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// parseCount parses a count argument such as the number of windows.
// Range checking is left to the design model.
func parseCount(field, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errs.NotInteger(field)
	}
	return n, nil
}

// parseIndex parses a one-based index argument addressing one of n items and
// returns it zero-based.
func parseIndex(kind, arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errs.NotInteger(kind + " number")
	}
	if i < 1 || i > n {
		return 0, errs.New(errs.ErrCodeIndexRange, "%s %d does not exist (design has %s)", kind, i, plural(n, kind))
	}
	return i - 1, nil
}

// plural formats n with a singular or plural noun.
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
