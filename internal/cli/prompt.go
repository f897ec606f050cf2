package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptSelection asks for a 1-based selection between 1 and max. It
// re-prompts on malformed or out-of-range input and reports ok=false
// when input ends before a valid selection was made.
func promptSelection(reader *bufio.Reader, out io.Writer, label string, max int) (int, bool, error) {
	for {
		fmt.Fprintf(out, "%s (1-%d): ", label, max)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return 0, false, err
		}
		choice, parseErr := strconv.Atoi(strings.TrimSpace(line))
		if parseErr == nil && choice >= 1 && choice <= max {
			return choice, true, nil
		}
		if err == io.EOF {
			return 0, false, nil
		}
		fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", max)
	}
}

// pressEnter waits for an acknowledgment line. It reports ok=false when
// input ended.
func pressEnter(reader *bufio.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "\nPress Enter to continue...")
	_, err := readLine(reader)
	fmt.Fprintln(out)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
