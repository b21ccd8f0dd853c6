package id3tag

import (
	"log/slog"

	"github.com/simonhull/id3tag/internal/types"
)

// EditOption configures behavior when editing files.
//
// Example:
//
//	res, err := id3tag.Edit("song.mp3", id3tag.FrameTitle, "New Title",
//	    id3tag.WithBackup(".bak"),
//	    id3tag.WithValidation(),
//	)
type EditOption func(*editOptions)

// editOptions holds configuration for editing files.
type editOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
	maxFrameSize    int
	logger          *slog.Logger
}

// defaultEditOptions returns the default configuration for editing.
func defaultEditOptions() *editOptions {
	return &editOptions{
		backupSuffix:    "",
		validate:        false,
		preserveModTime: false,
		maxFrameSize:    types.DefaultMaxFrameSize,
		logger:          slog.New(slog.DiscardHandler),
	}
}

// WithBackup keeps the original file under path+suffix.
//
// For example, WithBackup(".bak") leaves "song.mp3.bak" holding the bytes
// "song.mp3" had before the edit. An existing backup is overwritten.
func WithBackup(suffix string) EditOption {
	return func(o *editOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing and checks that the edited
// frame holds the new value.
func WithValidation() EditOption {
	return func(o *editOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
func WithPreserveModTime() EditOption {
	return func(o *editOptions) {
		o.preserveModTime = true
	}
}

// WithEditMaxFrameSize bounds both the frames read from the source and the
// new value. Values <= 0 keep the default of 16 MiB.
func WithEditMaxFrameSize(bytes int) EditOption {
	return func(o *editOptions) {
		if bytes > 0 {
			o.maxFrameSize = bytes
		}
	}
}

// WithEditLogger sets the structured logger used while editing.
func WithEditLogger(logger *slog.Logger) EditOption {
	return func(o *editOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
