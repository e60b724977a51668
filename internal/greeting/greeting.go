// Package greeting prints fixed-format greeting lines to standard output.
package greeting

import (
	"fmt"
	"io"
	"os"
)

// DefaultName is used when no name is supplied.
const DefaultName = "programmer"

// Message returns the greeting line for name, without a trailing newline.
func Message(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// GreetProgrammer prints "Hello, programmer!".
func GreetProgrammer() {
	Greet(DefaultName)
}

// Greet prints "Hello, {name}!" to whatever os.Stdout is bound to at
// call time. Greet has no way to report a failed write; callers that
// need the error use Fgreet.
func Greet(name string) {
	_ = Fgreet(os.Stdout, name)
}

// GreetWithDefault greets the first name given, or DefaultName when
// called with no arguments. Extra arguments are ignored.
func GreetWithDefault(name ...string) {
	if len(name) == 0 {
		Greet(DefaultName)
		return
	}
	Greet(name[0])
}

// Fgreet writes the greeting for name to w.
func Fgreet(w io.Writer, name string) error {
	_, err := fmt.Fprintln(w, Message(name))
	return err
}
