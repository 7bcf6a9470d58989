//go:build linux || darwin

package term

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Unix is a Terminal over a pair of file descriptors, normally stdin and
// stdout of an interactive session. Raw mode is entered with termios:
// canonical processing, echo, and signal generation are disabled so
// every byte, including Ctrl-C and Ctrl-D, arrives at the decoder.
type Unix struct {
	in    *os.File
	out   *bufio.Writer
	outFD int

	saved *unix.Termios // settings to restore on ExitRaw, nil when cooked
}

// NewUnix creates a Unix terminal reading from in and writing to out.
func NewUnix(in, out *os.File) *Unix {
	return &Unix{
		in:    in,
		out:   bufio.NewWriter(out),
		outFD: int(out.Fd()),
	}
}

// Stdio returns a Unix terminal over os.Stdin and os.Stdout.
func Stdio() *Unix {
	return NewUnix(os.Stdin, os.Stdout)
}

// ReadByte blocks until one input byte is available.
func (u *Unix) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := u.in.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// Write buffers output bytes.
func (u *Unix) Write(p []byte) error {
	_, err := u.out.Write(p)
	return err
}

// Flush delivers buffered output.
func (u *Unix) Flush() error {
	return u.out.Flush()
}

// EnterRaw switches the input descriptor to raw mode, saving the current
// settings. Calling it twice is a no-op.
func (u *Unix) EnterRaw() error {
	if u.saved != nil {
		return nil
	}

	fd := int(u.in.Fd())
	old, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("reading termios: %w", err)
	}

	raw := *old
	raw.Iflag &^= unix.ICRNL | unix.INLCR | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}

	u.saved = old
	return nil
}

// ExitRaw restores the settings saved by EnterRaw. A no-op when cooked.
func (u *Unix) ExitRaw() error {
	if u.saved == nil {
		return nil
	}

	if err := u.Flush(); err != nil {
		return err
	}
	fd := int(u.in.Fd())
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, u.saved); err != nil {
		return fmt.Errorf("restoring termios: %w", err)
	}
	u.saved = nil
	return nil
}

// CursorLeft moves the cursor n columns left.
func (u *Unix) CursorLeft(n int) error {
	return u.Write([]byte(CursorBack(n)))
}

// CursorRight moves the cursor n columns right.
func (u *Unix) CursorRight(n int) error {
	return u.Write([]byte(CursorForward(n)))
}

// ClearToEnd erases from the cursor to the end of the line.
func (u *Unix) ClearToEnd() error {
	return u.Write([]byte(ClearEOL))
}

// WriteNewline emits CRLF. In raw mode output post-processing is off, so
// a bare LF would not return the carriage.
func (u *Unix) WriteNewline() error {
	return u.Write([]byte("\r\n"))
}

// Size returns the terminal width and height in character cells.
func (u *Unix) Size() (width, height int, err error) {
	return term.GetSize(u.outFD)
}
