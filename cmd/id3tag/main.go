// Command id3tag views and edits the ID3v2 text frames of MP3 files.
//
// Usage:
//
//	id3tag -v <file.mp3>...
//	id3tag -e -t|-a|-A|-y|-C|-c <value> <file.mp3>
//	id3tag --help
//	id3tag --version
//
// Set ID3TAG_DEBUG=1 to log every frame to stderr and ID3TAG_BACKUP to a
// suffix (such as ".bak") to keep a copy of the original file on edit.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/simonhull/id3tag"
)

const (
	banner = "................................................................................"
	rule   = "------------------------------------------------------------------------"
)

// InvalidArgumentsError is returned when the command line does not match
// any accepted shape.
type InvalidArgumentsError struct {
	Args   []string
	Reason string
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("%s: invalid arguments (%s)", strings.Join(e.Args, " "), e.Reason)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	cmd, err := parseArgs(args)
	if err != nil {
		printUsageError(stdout, err)
		return 1
	}

	switch cmd.mode {
	case modeHelp:
		printHelp(stdout)
		return 0
	case modeVersion:
		fmt.Fprintln(stdout, id3tag.GetVersionInfo())
		return 0
	case modeView:
		if err := view(ctx, stdout, cmd.paths, logger); err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", describe(err))
			return 1
		}
		return 0
	case modeEdit:
		if err := edit(ctx, stdout, cmd, logger); err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", describe(err))
			return 1
		}
		return 0
	}
	return 1
}

type mode int

const (
	modeHelp mode = iota
	modeVersion
	modeView
	modeEdit
)

type command struct {
	mode  mode
	paths []string
	frame id3tag.FrameID
	value string
}

func parseArgs(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, &InvalidArgumentsError{Args: args, Reason: "no arguments"}
	}

	switch args[0] {
	case "--help", "-h":
		if len(args) != 1 {
			return command{}, &InvalidArgumentsError{Args: args, Reason: "--help takes no arguments"}
		}
		return command{mode: modeHelp}, nil
	case "--version":
		if len(args) != 1 {
			return command{}, &InvalidArgumentsError{Args: args, Reason: "--version takes no arguments"}
		}
		return command{mode: modeVersion}, nil
	case "-v":
		if len(args) < 2 {
			return command{}, &InvalidArgumentsError{Args: args, Reason: "-v needs at least one file"}
		}
		return command{mode: modeView, paths: args[1:]}, nil
	case "-e":
		if len(args) != 4 {
			return command{}, &InvalidArgumentsError{Args: args, Reason: "-e needs a tag option, a value and a file"}
		}
		id, ok := id3tag.FrameForOption(args[1])
		if !ok {
			return command{}, &InvalidArgumentsError{Args: args, Reason: fmt.Sprintf("unknown tag option %q", args[1])}
		}
		return command{mode: modeEdit, frame: id, value: args[2], paths: args[3:]}, nil
	default:
		return command{}, &InvalidArgumentsError{Args: args, Reason: "first argument should be -v or -e"}
	}
}

func view(ctx context.Context, w io.Writer, paths []string, logger *slog.Logger) error {
	opts := []id3tag.Option{id3tag.WithLogger(logger)}

	var tags []*id3tag.Tag
	if len(paths) == 1 {
		tag, err := id3tag.OpenContext(ctx, paths[0], opts...)
		if err != nil {
			return err
		}
		tags = []*id3tag.Tag{tag}
	} else {
		var err error
		if tags, err = id3tag.OpenMany(ctx, paths, opts...); err != nil {
			return err
		}
	}

	for _, tag := range tags {
		fmt.Fprintln(w, banner)
		if len(tags) > 1 {
			fmt.Fprintf(w, "MP3 Reader and Tag Editor for ID3v2: %s\n", tag.Path)
		} else {
			fmt.Fprintln(w, "MP3 Reader and Tag Editor for ID3v2")
		}
		fmt.Fprintln(w, banner)
		for _, field := range tag.Fields {
			fmt.Fprintln(w, id3tag.FormatField(field))
		}
		fmt.Fprintln(w, banner)
		for _, warn := range tag.Warnings {
			logger.Warn("tag warning", "path", tag.Path, "warning", warn.String())
		}
	}
	return nil
}

func edit(ctx context.Context, w io.Writer, cmd command, logger *slog.Logger) error {
	opts := []id3tag.EditOption{id3tag.WithEditLogger(logger)}
	if suffix := os.Getenv("ID3TAG_BACKUP"); suffix != "" {
		opts = append(opts, id3tag.WithBackup(suffix))
	}

	res, err := id3tag.EditContext(ctx, cmd.paths[0], cmd.frame, cmd.value, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "---------------------------Selected Edit option--------------------------")
	fmt.Fprintf(w, "Tag to be edited: %s\n", res.ID)
	fmt.Fprintf(w, "%s : %s\n", res.Label, res.NewValue)
	fmt.Fprintf(w, "---------------------------%s changed successfully ----------------------\n", res.Label)
	return nil
}

// describe turns library errors into the short messages users see.
func describe(err error) string {
	var notFound *id3tag.FileNotFoundError
	var notID3 *id3tag.NotID3Error
	var noTag *id3tag.TagNotFoundError

	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("%s file is not available", notFound.Path)
	case errors.As(err, &notID3):
		return fmt.Sprintf("%s is not an MP3 file", notID3.Path)
	case errors.As(err, &noTag):
		return fmt.Sprintf("%s (%s) not found in %s", id3tag.Label(noTag.ID), noTag.ID, noTag.Path)
	default:
		return err.Error()
	}
}

func printUsageError(w io.Writer, err error) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "ERROR: %s\n", err)
	fmt.Fprintln(w, "USAGE :")
	fmt.Fprintln(w, "To view please pass like  : id3tag -v mp3filename")
	fmt.Fprintln(w, "To edit please pass like  : id3tag -e -t/ -a/ -A/ -y/ -C/ -c content mp3filename")
	fmt.Fprintln(w, "For help please pass like : id3tag --help")
	fmt.Fprintln(w, rule)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "---------------------------------------------")
	fmt.Fprintln(w, "                 HELP MENU                   ")
	fmt.Fprintln(w, "---------------------------------------------")
	fmt.Fprintln(w, "1.  -v    : Displays MP3 file information")
	fmt.Fprintln(w, "2.  -e    : To modify MP3 file information")
	for i, opt := range []string{"-t", "-a", "-A", "-y", "-C", "-c"} {
		id, _ := id3tag.FrameForOption(opt)
		fmt.Fprintf(w, "     2.%d  %s : Modify %s tag\n", i+1, opt, id3tag.Label(id))
	}
	fmt.Fprintln(w, "3.  --version : Prints version information")
	fmt.Fprintln(w, "---------------------------------------------")
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("ID3TAG_DEBUG") == "1" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
