package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInputCanceled is returned when the user aborts live input with Ctrl+C.
var ErrInputCanceled = errors.New("input canceled")

const (
	keyCtrlC     = 3
	keyBackspace = 8
	keyDelete    = 127
)

// lineEditor keeps the query typed so far in raw terminal mode.
type lineEditor struct {
	input []byte
}

// feed applies one keystroke. changed reports whether the query text moved.
func (e *lineEditor) feed(char byte) (done, canceled, changed bool) {
	switch {
	case char == '\r' || char == '\n':
		return true, false, false
	case char == keyCtrlC:
		return true, true, false
	case char == keyDelete || char == keyBackspace:
		if len(e.input) == 0 {
			return false, false, false
		}
		e.input = e.input[:len(e.input)-1]
		return false, false, true
	case char >= 32 && char <= 126:
		e.input = append(e.input, char)
		return false, false, true
	}
	return false, false, false
}

func (e *lineEditor) String() string {
	return string(e.input)
}

// ReadQuery consumes keystrokes from r until enter or Ctrl+C, sending the
// query to onChange after every edit (and once up front).
func ReadQuery(r io.Reader, initial string, onChange func(query string)) (string, error) {
	reader := bufio.NewReader(r)
	editor := &lineEditor{input: []byte(initial)}
	onChange(editor.String())
	for {
		char, err := reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return editor.String(), nil
			}
			return "", err
		}
		done, canceled, changed := editor.feed(char)
		if canceled {
			return "", ErrInputCanceled
		}
		if done {
			return editor.String(), nil
		}
		if changed {
			onChange(editor.String())
		}
	}
}

// ReadQueryLive puts stdin in raw mode and reads a query live, see ReadQuery.
func ReadQueryLive(initial string, onChange func(query string)) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("failed to set raw terminal mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()
	return ReadQuery(os.Stdin, initial, onChange)
}

// PickHistory runs an interactive fuzzy picker over items, drawing to out.
// Enter picks the best match, or the typed text when nothing matches.
func PickHistory(items []string, prompt string, out io.Writer) (string, error) {
	draw := func(query string) {
		// clear screen and home the cursor; raw mode needs explicit \r.
		fmt.Fprint(out, "\033[2J\033[H")
		fmt.Fprintf(out, "%s%s\r\n", prompt, query)
		fmt.Fprint(out, "--------------------------------\r\n")
		matches := FilterHistory(items, query)
		if len(matches) == 0 {
			fmt.Fprint(out, "(no matches)\r\n")
		}
		for i, m := range matches {
			fmt.Fprintf(out, "%d. %s\r\n", i+1, m)
		}
	}
	query, err := ReadQueryLive("", draw)
	fmt.Fprint(out, "\033[2J\033[H")
	if err != nil {
		return "", err
	}
	return ResolvePick(items, query), nil
}

// ResolvePick maps the final picker query onto a history entry.
func ResolvePick(items []string, query string) string {
	if matches := FilterHistory(items, query); len(matches) > 0 {
		return matches[0]
	}
	return query
}
