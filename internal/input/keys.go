package input

import (
	"errors"
	"os"
	"time"
)

// EscapeTimeout bounds the wait for escape-sequence continuation bytes.
// A lone ESC with no continuation inside this window decodes as Other.
// Named so tests can simulate slow or partial sequences deterministically.
const EscapeTimeout = 50 * time.Millisecond

const escByte = 0x1b

// Token is one decoded logical key event.
type Token int

const (
	// None means no input device is available; callers must fall back to
	// the safe default instead of blocking.
	None Token = iota
	Enter
	Left
	Right
	Up
	Down
	Quit
	// Other covers unmapped keys and malformed escape sequences; callers
	// ignore it and wait for the next event.
	Other
)

func (t Token) String() string {
	switch t {
	case None:
		return "none"
	case Enter:
		return "enter"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Quit:
		return "quit"
	default:
		return "other"
	}
}

// ByteSource is the raw channel the decoder reads from. The timeout read
// is a bounded blocking read, not a spin loop.
type ByteSource interface {
	// ReadByte blocks until one byte is available.
	ReadByte() (byte, error)
	// ReadByteTimeout waits at most d for a byte; ok is false on timeout.
	ReadByteTimeout(d time.Duration) (b byte, ok bool, err error)
}

// Decoder turns raw bytes from a resolved Source into Tokens.
type Decoder struct {
	src ByteSource
}

// NewDecoder builds a decoder over the resolved source. An unavailable
// source yields a decoder that always returns None immediately.
func NewDecoder(s *Source) *Decoder {
	if !s.Available() {
		return &Decoder{}
	}
	return &Decoder{src: &fileSource{f: s.File()}}
}

// NewDecoderFrom builds a decoder over an explicit byte source.
func NewDecoderFrom(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// Next blocks until one key event is available and returns its token.
// Multi-byte arrow sequences decode as exactly one token. Read failures
// surface as None with the error; callers treat that like a missing device.
func (d *Decoder) Next() (Token, error) {
	if d.src == nil {
		return None, nil
	}

	b, err := d.src.ReadByte()
	if err != nil {
		return None, err
	}

	if b == escByte {
		return d.decodeEscape()
	}

	switch b {
	case '\r', '\n':
		return Enter, nil
	case 'q', 'Q':
		return Quit, nil
	case 'h', 'H':
		return Left, nil
	case 'l', 'L':
		return Right, nil
	default:
		return Other, nil
	}
}

// decodeEscape reads up to two continuation bytes under a short bounded
// wait. CSI (ESC '[') and SS3 (ESC 'O') arrow finals map to direction
// tokens; anything partial or unknown is Other.
func (d *Decoder) decodeEscape() (Token, error) {
	b1, ok, err := d.src.ReadByteTimeout(EscapeTimeout)
	if err != nil {
		return None, err
	}
	if !ok {
		// Lone escape: the continuation never arrived.
		return Other, nil
	}
	if b1 != '[' && b1 != 'O' {
		return Other, nil
	}

	b2, ok, err := d.src.ReadByteTimeout(EscapeTimeout)
	if err != nil {
		return None, err
	}
	if !ok {
		return Other, nil
	}

	switch b2 {
	case 'A':
		return Up, nil
	case 'B':
		return Down, nil
	case 'C':
		return Right, nil
	case 'D':
		return Left, nil
	default:
		return Other, nil
	}
}

// fileSource reads single bytes from a terminal file, using read deadlines
// for the bounded escape-sequence wait.
type fileSource struct {
	f *os.File
}

func (s *fileSource) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := s.f.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (s *fileSource) ReadByteTimeout(d time.Duration) (byte, bool, error) {
	if err := s.f.SetReadDeadline(time.Now().Add(d)); err != nil {
		// The handle does not support deadlines; fall back to treating the
		// escape as lone rather than risking an unbounded block.
		return 0, false, nil
	}
	defer s.f.SetReadDeadline(time.Time{})

	var buf [1]byte
	n, err := s.f.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return 0, false, nil
}
