package clipboard

import (
	"errors"
	"os"
	"runtime"
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"
)

type backend int

const (
	none backend = iota
	native
	external
)

var (
	mu      sync.Mutex
	current = none
)

var ErrNotInitialized = errors.New("clipboard not initialized")

// Init picks a clipboard backend.
// The native backend is used on windows, macOS and X11. Wayland
// sessions go through the external wl-copy/wl-paste tools.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	switch runtime.GOOS {
	case "windows", "darwin":
		current = native

	case "linux", "freebsd", "openbsd", "netbsd":
		switch {
		case os.Getenv("WAYLAND_DISPLAY") != "":
			current = external

		case os.Getenv("DISPLAY") != "":
			current = native

		default:
			return errors.New("no clipboard backend detected (no DISPLAY or WAYLAND_DISPLAY)")
		}
	default:
		return errors.New("unsupported OS for clipboard")
	}

	if current == native {
		if err := clipboard.Init(); err != nil {
			current = none
			return err
		}
	}

	if current == external && atotto.Unsupported {
		current = none
		return errors.New("no clipboard utility found")
	}

	return nil
}

func Write(text string) error {
	mu.Lock()
	defer mu.Unlock()

	switch current {
	case native:
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	case external:
		return atotto.WriteAll(text)
	}

	return ErrNotInitialized
}

func Read() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	switch current {
	case native:
		return string(clipboard.Read(clipboard.FmtText)), nil
	case external:
		return atotto.ReadAll()
	}

	return "", ErrNotInitialized
}
