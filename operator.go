package udprip

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LoadStartupFile reads commands from r, one per line, `#` introducing a
// comment, and submits each to the router — the same shape as
// original_source/router.py's _process_startup_file, invoked once before
// the operator loop starts reading stdin.
func (rt *Router) LoadStartupFile(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		rt.Submit(fields[0], fields[1:])
	}
	return scanner.Err()
}

// OperatorLoop reads one whitespace-split command per line from in until
// EOF, the input is closed, or cancel is invoked because the operator
// typed `quit`. Every verb except `quit` is submitted to the router's
// event loop; `quit` is handled here directly since it ends the process
// rather than mutating routing state.
func (rt *Router) OperatorLoop(in io.Reader, cancel func()) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "quit" {
			cancel()
			return
		}
		rt.Submit(fields[0], fields[1:])
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(rt.out, "stdin read error: %v\n", err)
	}
	cancel()
}
