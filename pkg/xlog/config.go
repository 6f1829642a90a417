package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging config: info level text output
// to stdout with source annotation and no file output.
func NewConfig() Config {
	return Config{
		Level:        slog.LevelInfo,
		AddSource:    true,
		AttrReplacer: NormalizeSourceAttrReplacer(),
		Format:       "text",
		Writer:       os.Stdout,
		FileMaxSize:  30,
	}
}

// Config describes how log records are formatted and where they go.
type Config struct {
	// Level is the minimum record level that will be logged.
	Level slog.Level
	// AddSource annotates each record with the emitting file and line.
	AddSource bool
	// AttrReplacer rewrites attributes before they are logged.
	AttrReplacer AttrReplacer

	// Format of the standard output, one of "text" or "json".
	Format string
	// Writer for the standard output, os.Stdout when nil.
	Writer io.Writer

	// FilePath enables additional JSON output to a rotated log file
	// when non-empty.
	FilePath string
	// FileMaxSize is the size in MB above which the file is rotated.
	FileMaxSize int
	// FileMaxAge is the number of days rotated files are kept, 0 keeps
	// them forever.
	FileMaxAge int
	// FileMaxBackups is the number of rotated files kept, 0 keeps all.
	FileMaxBackups int
	// FileCompress compresses rotated files.
	FileCompress bool
}

// BuildHandler creates a slog.Handler from the config.
func (c Config) BuildHandler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.AddSource,
		Level:       c.Level,
		ReplaceAttr: c.AttrReplacer,
	}
	writer := c.Writer
	if writer == nil {
		writer = os.Stdout
	}

	create := TextHandlerCreator
	if c.Format == "json" {
		create = JSONHandlerCreator
	}
	handlers := []slog.Handler{NewLeveledHandlerCreator(create)(writer, opts)}

	if fw := c.fileWriter(); fw != nil {
		handlers = append(handlers, NewLeveledHandlerCreator(JSONHandlerCreator)(fw, opts))
	}
	if len(handlers) == 1 {
		return handlers[0]
	}
	return MultiHandler(handlers...)
}

func (c Config) fileWriter() io.Writer {
	if c.FilePath == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.FilePath,
		MaxSize:    c.FileMaxSize,
		MaxAge:     c.FileMaxAge,
		MaxBackups: c.FileMaxBackups,
		Compress:   c.FileCompress,
	}
}
