package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/calebmer/inflections/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: inflect mcp\n\n")
		Writef(output, "Run the MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(output, "Exposes convert, classify, and tokenize tools to MCP clients.\n")
		Writef(output, "Defaults are configurable via INFLECT_* environment variables:\n\n")
		Writef(output, "  INFLECT_DEFAULT_STYLE    style used when a tool omits 'style' (default: camel)\n")
		Writef(output, "  INFLECT_MAX_TEXT_BYTES   maximum accepted input size (default: 1048576)\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
