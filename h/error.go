package h

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// unwrapErr annotates msg with the caller of the unwrapping method.
func unwrapErr(msg string, err error) error {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		if err != nil {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return fmt.Errorf("%s", msg)
	}

	funcName := runtime.FuncForPC(pc).Name()
	if err != nil {
		return fmt.Errorf("%s in %s (%s:%d): %w", msg, funcName, filepath.Base(file), line, err)
	}
	return fmt.Errorf("%s in %s (%s:%d)", msg, funcName, filepath.Base(file), line)
}
