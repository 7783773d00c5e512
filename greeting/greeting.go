package greeting

import (
	"fmt"
	"io"
	"os"
)

// Message is written verbatim, with no trailing newline.
const Message = "Hello World: From C"

// Write emits Message to w in a single Write call.
func Write(w io.Writer) error {
	n, err := io.WriteString(w, Message)
	if err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	if n != len(Message) {
		return fmt.Errorf("write greeting: %w", io.ErrShortWrite)
	}
	return nil
}

// Print writes Message to standard output, ignoring any error.
func Print() {
	_ = Write(os.Stdout)
}
