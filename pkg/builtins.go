package vesper

import "io"

// DefaultBuiltins returns the registry shipped with Run: just print, the
// only built-in the grammar references. print renders each argument with
// DataValue.Render, space-separated, followed by a newline, and produces no
// value.
func DefaultBuiltins(w io.Writer) Builtins {
	return Builtins{
		"print": printBuiltin(w),
	}
}

func printBuiltin(w io.Writer) Builtin {
	return func(args []DataValue) (DataValue, bool, error) {
		for i, arg := range args {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return DataValue{}, false, err
				}
			}
			if _, err := io.WriteString(w, arg.Render()); err != nil {
				return DataValue{}, false, err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return DataValue{}, false, err
		}
		return DataValue{}, false, nil
	}
}
