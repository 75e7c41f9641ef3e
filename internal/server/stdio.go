package server

import (
	"bufio"
	"context"
	"io"

	"theologai/internal/logging"
)

// ServeStdio answers newline-delimited JSON-RPC requests from in on out
// until EOF or context cancellation. Logging stays on stderr so out
// carries nothing but responses.
func ServeStdio(ctx context.Context, reg *Registry, in io.Reader, out io.Writer) error {
	logging.ServerStartup("stdio")

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		resp := reg.Dispatch(ctx, line)
		if _, err := out.Write(append(resp, '\n')); err != nil {
			return err
		}
	}
	return sc.Err()
}
