package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// readText joins args into the input text. With no args (or a single "-")
// the text is read from stdin, unless stdin is an interactive terminal.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) && len(args) == 0 {
		return "", fmt.Errorf("text is required (pass it as arguments or pipe it in)")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("text is required")
	}
	return text, nil
}
