// Package capture redirects the process standard output so tests can
// assert on text printed by code that writes to os.Stdout directly.
package capture

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Stdout runs fn with os.Stdout bound to a pipe and returns everything
// fn wrote. The previous os.Stdout is restored before Stdout returns,
// including when fn panics.
func Stdout(fn func()) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("creating pipe: %w", err)
	}
	defer r.Close()

	type readResult struct {
		data []byte
		err  error
	}
	done := make(chan readResult, 1)
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, r)
		done <- readResult{data: buf.Bytes(), err: err}
	}()

	orig := os.Stdout
	os.Stdout = w
	func() {
		defer func() {
			os.Stdout = orig
			w.Close()
		}()
		fn()
	}()

	res := <-done
	if res.err != nil {
		return "", fmt.Errorf("reading captured output: %w", res.err)
	}
	return string(res.data), nil
}
