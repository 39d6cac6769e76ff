package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/dial/pkg/domain"
	"github.com/aretw0/dial/pkg/runner"
)

// ErrInvalidCommands is returned by Validate when at least one line is malformed.
var ErrInvalidCommands = errors.New("invalid commands")

// Validate parses every line of the input without simulating and reports each malformed line to w.
func Validate(path string, stdin io.Reader, w io.Writer) error {
	src, err := openInput(path, stdin)
	if err != nil {
		return err
	}
	defer src.Close()

	var bad, total int
	scanner := runner.NewLineScanner(src)
	line := 0
	for scanner.Scan() {
		line++
		token, err := runner.SanitizeLine(scanner.Text())
		if err == nil {
			if token == "" {
				continue
			}
			_, err = domain.ParseCommand(token)
		}
		total++
		if err != nil {
			bad++
			fmt.Fprintf(w, "line %d: %v\n", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		err = runner.ScanError(line+1, err)
		var lineErr *runner.LineError
		if !errors.As(err, &lineErr) {
			return err
		}
		bad++
		total++
		fmt.Fprintf(w, "%v\n", lineErr)
	}

	if bad > 0 {
		return fmt.Errorf("%w: %d of %d lines", ErrInvalidCommands, bad, total)
	}
	fmt.Fprintf(w, "%d commands OK\n", total)
	return nil
}
