package term

// Terminal is the byte-channel capability the line editor consumes.
//
// ReadByte is the editor's only suspension point: it blocks until one
// input byte is available and returns io.EOF when the channel is
// exhausted. Write may buffer; Flush delivers buffered output.
// EnterRaw/ExitRaw toggle character-at-a-time delivery without local
// echo and are no-ops for channels that are inherently raw.
//
// WriteNewline emits the backend's end-of-line convention. The editor
// itself never hardcodes line-ending bytes.
type Terminal interface {
	ReadByte() (byte, error)
	Write(p []byte) error
	Flush() error

	EnterRaw() error
	ExitRaw() error

	CursorLeft(n int) error
	CursorRight(n int) error
	ClearToEnd() error
	WriteNewline() error
}
