package share

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboard marks a failed clipboard write. It is never fatal: the text
// can still be shown to the player.
var ErrClipboard = errors.New("share: clipboard unavailable")

// Clipboard accepts plain text. Nothing is ever read back.
type Clipboard interface {
	WriteText(text string) error
}

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// SystemClipboard writes to the OS clipboard (xclip/xsel/wl-copy on Linux,
// pbcopy on macOS, the Win32 API on Windows). Hosts without any of these
// fail every write with ErrClipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return nil
}

// Discard drops the text. Used when clipboard writes are turned off.
type Discard struct{}

func (Discard) WriteText(string) error { return nil }
