package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/dshills/keyline/internal/decoder"
	"github.com/dshills/keyline/internal/history"
	"github.com/dshills/keyline/internal/key"
	"github.com/dshills/keyline/internal/linebuf"
	"github.com/dshills/keyline/internal/term"
)

// Editor runs interactive read-line sessions over a Terminal. The
// history ring persists across sessions; each session gets a fresh line
// buffer and decoder.
type Editor struct {
	maxLine   int
	eofPolicy EOFPolicy
	ring      *history.Ring
}

// New creates an Editor with the given options.
func New(opts ...Option) *Editor {
	e := &Editor{
		maxLine: DefaultMaxLineLen,
		ring:    history.New(DefaultHistoryCapacity),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// History returns the editor's history ring.
func (e *Editor) History() *history.Ring {
	return e.ring
}

// ReadLine runs one editing session. The prompt is written verbatim
// before editing begins. It returns the submitted line, ErrInterrupted,
// ErrEndOfInput, or a terminal I/O error.
func (e *Editor) ReadLine(prompt string, t term.Terminal) (string, error) {
	s := &session{
		editor: e,
		term:   t,
		buf:    linebuf.New(64),
		dec:    decoder.New(),
	}
	return s.run(prompt)
}

// session is the per-ReadLine state: the line under construction and the
// stashed in-progress line while history browsing is active.
type session struct {
	editor *Editor
	term   term.Terminal
	buf    *linebuf.Buffer
	dec    *decoder.Decoder
	stash  string
}

func (s *session) run(prompt string) (line string, err error) {
	t := s.term
	s.editor.ring.ResetCursor()

	if err := t.EnterRaw(); err != nil {
		return "", fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if rerr := t.ExitRaw(); rerr != nil && err == nil {
			err = fmt.Errorf("restoring terminal: %w", rerr)
		}
	}()

	if err := t.Write([]byte(prompt)); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	if err := t.Flush(); err != nil {
		return "", err
	}

	for {
		b, err := t.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Stream exhausted: same contract as Ctrl-D
				// on an empty line.
				return "", ErrEndOfInput
			}
			return "", fmt.Errorf("reading input: %w", err)
		}

		ev, ok := s.dec.Feed(b)
		if !ok {
			continue
		}

		line, done, err := s.dispatch(ev)
		if err != nil {
			return "", err
		}
		if done {
			return line, nil
		}

		if err := t.Flush(); err != nil {
			return "", err
		}
	}
}

// dispatch applies one key event. done is true when the session reached
// a terminal outcome; err then carries the termination signal, or nil
// for a submitted line.
func (s *session) dispatch(ev key.Event) (line string, done bool, err error) {
	switch ev.Key {
	case key.KeyRune:
		return "", false, s.insertRune(ev.Rune)
	case key.KeyEnter:
		line, err := s.submit()
		return line, true, err
	case key.KeyBackspace:
		return "", false, s.deleteBackward()
	case key.KeyDelete:
		return "", false, s.deleteForward()
	case key.KeyLeft:
		return "", false, s.term.CursorLeft(s.buf.Left())
	case key.KeyRight:
		return "", false, s.term.CursorRight(s.buf.Right())
	case key.KeyHome:
		return "", false, s.term.CursorLeft(s.buf.Home())
	case key.KeyEnd:
		return "", false, s.term.CursorRight(s.buf.End())
	case key.KeyWordLeft:
		return "", false, s.term.CursorLeft(s.buf.WordLeft())
	case key.KeyWordRight:
		return "", false, s.term.CursorRight(s.buf.WordRight())
	case key.KeyDeleteWordLeft:
		return "", false, s.deleteWordLeft()
	case key.KeyDeleteWordRight:
		return "", false, s.deleteWordRight()
	case key.KeyHistoryPrev:
		return "", false, s.historyPrev()
	case key.KeyHistoryNext:
		return "", false, s.historyNext()
	case key.KeyInterrupt:
		err := s.interrupt()
		if err == nil {
			err = ErrInterrupted
		}
		return "", true, err
	case key.KeyEOF:
		return s.endOfInput()
	default:
		// KeyUnknown and anything unmapped: no visible effect.
		// Unexpected bytes must never corrupt editing state.
		return "", false, nil
	}
}

func (s *session) insertRune(r rune) error {
	if s.buf.Len() >= s.editor.maxLine {
		return nil
	}

	s.buf.Insert(r)
	if err := s.term.Write([]byte(string(r))); err != nil {
		return err
	}
	if s.buf.Cursor() < s.buf.Len() {
		return s.redrawFromCursor()
	}
	return nil
}

func (s *session) deleteBackward() error {
	w := s.buf.DeleteBackward()
	if w == 0 {
		return nil
	}
	if err := s.term.CursorLeft(w); err != nil {
		return err
	}
	return s.redrawFromCursor()
}

func (s *session) deleteForward() error {
	if s.buf.DeleteForward() == 0 {
		return nil
	}
	return s.redrawFromCursor()
}

func (s *session) deleteWordLeft() error {
	w := s.buf.DeleteWordLeft()
	if w == 0 {
		return nil
	}
	if err := s.term.CursorLeft(w); err != nil {
		return err
	}
	return s.redrawFromCursor()
}

func (s *session) deleteWordRight() error {
	if s.buf.DeleteWordRight() == 0 {
		return nil
	}
	return s.redrawFromCursor()
}

func (s *session) historyPrev() error {
	ring := s.editor.ring
	if !ring.Browsing() {
		s.stash = s.buf.Text()
	}
	entry, ok := ring.Prev()
	if !ok {
		return nil
	}
	return s.replaceLine(entry)
}

func (s *session) historyNext() error {
	ring := s.editor.ring
	if !ring.Browsing() {
		return nil
	}
	entry, ok := ring.Next()
	if !ok {
		// Walked past the newest entry: restore the line that was
		// in progress when browsing began.
		return s.replaceLine(s.stash)
	}
	return s.replaceLine(entry)
}

func (s *session) submit() (string, error) {
	s.editor.ring.ResetCursor()
	line := s.buf.Take()
	s.editor.ring.Record(line)

	if err := s.term.WriteNewline(); err != nil {
		return "", err
	}
	if err := s.term.Flush(); err != nil {
		return "", err
	}
	return line, nil
}

func (s *session) interrupt() error {
	s.editor.ring.ResetCursor()
	s.buf.Take()

	if err := s.term.WriteNewline(); err != nil {
		return err
	}
	return s.term.Flush()
}

func (s *session) endOfInput() (string, bool, error) {
	if s.buf.IsEmpty() {
		if err := s.term.WriteNewline(); err != nil {
			return "", true, err
		}
		if err := s.term.Flush(); err != nil {
			return "", true, err
		}
		return "", true, ErrEndOfInput
	}

	if s.editor.eofPolicy == EOFDeleteChar {
		return "", false, s.deleteForward()
	}
	return "", false, nil
}

// redrawFromCursor repaints everything right of the cursor and moves the
// terminal cursor back to its logical position.
func (s *session) redrawFromCursor() error {
	if err := s.term.ClearToEnd(); err != nil {
		return err
	}

	rest := s.buf.AfterCursor()
	if rest == "" {
		return nil
	}
	if err := s.term.Write([]byte(rest)); err != nil {
		return err
	}
	return s.term.CursorLeft(s.buf.WidthAfterCursor())
}

// replaceLine clears the displayed line and substitutes text, cursor at
// the end.
func (s *session) replaceLine(text string) error {
	if err := s.term.CursorLeft(s.buf.Home()); err != nil {
		return err
	}
	if err := s.term.ClearToEnd(); err != nil {
		return err
	}
	s.buf.Set(text)
	return s.term.Write([]byte(text))
}
