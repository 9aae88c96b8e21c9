package external

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"slices"

	"github.com/kballard/go-shellquote"
)

// Kind tells how a Launchable has to be started
type Kind int

const (
	// Open hands a path to the operating system's default handler
	Open Kind = iota

	// Program runs an executable with arguments
	Program
)

var kinds = map[Kind]string{
	Open:    "open",
	Program: "program",
}

func (k Kind) String() string {
	return kinds[k]
}

var ErrEmptyCommand = errors.New("empty command")

// LaunchError is returned if a Launchable couldn't be built
// from its input
type LaunchError struct {
	Arg     string
	Message string
	Err     error
}

func (e *LaunchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s - %s: %v", e.Arg, e.Message, e.Err)
	}
	return fmt.Sprintf("%s - %s", e.Arg, e.Message)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Launchable is a fully resolved request to start an external process.
// Building one never starts anything.
type Launchable struct {
	Kind Kind

	// Path is the target of an Open request
	Path string

	// Exe and Args are the program and its arguments
	Exe  string
	Args []string
}

// Opener builds a request that opens path with the default handler of
// the current operating system.
func Opener(path string) (*Launchable, error) {
	if path == "" {
		return nil, &LaunchError{Arg: path, Message: "nothing to open"}
	}

	exe, args := openerCommand(runtime.GOOS)

	return &Launchable{
		Kind: Open,
		Path: path,
		Exe:  exe,
		Args: append(args, path),
	}, nil
}

// FromCommand splits a resolved command line into a program and its
// arguments using shell word splitting rules.
func FromCommand(line string) (*Launchable, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, &LaunchError{Arg: line, Message: "invalid command", Err: err}
	}

	if len(words) == 0 {
		return nil, &LaunchError{Arg: line, Message: "invalid command", Err: ErrEmptyCommand}
	}

	return &Launchable{
		Kind: Program,
		Exe:  words[0],
		Args: words[1:],
	}, nil
}

// openerCommand returns the default handler and its leading arguments
func openerCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "cmd", []string{"/c", "start", ""}
	default:
		return "xdg-open", nil
	}
}

// Cmd returns the command that starts the Launchable
func (l *Launchable) Cmd() *exec.Cmd {
	return exec.Command(l.Exe, l.Args...)
}

// String returns the command line in a form that could be pasted
// into a shell
func (l *Launchable) String() string {
	words := append([]string{l.Exe}, l.Args...)
	return shellquote.Join(words...)
}

// Equal reports whether both launchables start the same thing
func (l *Launchable) Equal(o *Launchable) bool {
	if l == nil || o == nil {
		return l == o
	}

	return l.Kind == o.Kind &&
		l.Path == o.Path &&
		l.Exe == o.Exe &&
		slices.Equal(l.Args, o.Args)
}

// System builds launchables for the current operating system
type System struct{}

func (System) Opener(path string) (*Launchable, error) {
	return Opener(path)
}

func (System) Command(line string) (*Launchable, error) {
	return FromCommand(line)
}
