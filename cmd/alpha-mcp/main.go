package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/alpha-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type CLI struct {
	LogLevel  string           `help:"Minimum log level written to stderr" enum:"debug,info,warn,error" default:"info" env:"ALPHA_MCP_LOG_LEVEL"`
	OutputDir string           `help:"Directory for color-keyed images. Defaults to each source image's directory" type:"path" env:"ALPHA_MCP_OUTPUT_DIR"`
	Version   kong.VersionFlag `short:"v" help:"Print version information and exit"`
}

func (c *CLI) Validate() error {
	if c.OutputDir == "" {
		return nil
	}
	info, err := os.Stat(c.OutputDir)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("not a directory")
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("invalid output dir %q: %w", c.OutputDir, err)
	}
	c.OutputDir = filepath.Clean(c.OutputDir)
	return nil
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("alpha-tools-mcp"),
		kong.Description("MCP server for color-key transparency and visual center detection.\n\n"+
			"The server communicates via MCP protocol over stdin/stdout. "+
			"Configure it in your MCP client (e.g., Claude Desktop)."),
		kong.Vars{"version": fmt.Sprintf("alpha-tools-mcp %s (built %s, commit %s)", Version, BuildTime, GitCommit)},
	)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	// stdout is for MCP protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit,
		"output_dir", cli.OutputDir)

	srv := server.New(server.Config{
		OutputDir: cli.OutputDir,
		Logger:    logger,
		Version:   Version,
	})
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
