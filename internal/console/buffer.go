package console

import "sync"

// Buffer is an in-memory Console. Tests and the hook end-to-end checks
// feed it input up front and inspect the rendered output afterwards.
type Buffer struct {
	mu        sync.Mutex
	in        []byte
	out       []byte
	stop      bool
	uppercase bool
	fg, bg    uint8
}

func NewBuffer() *Buffer {
	return &Buffer{uppercase: true}
}

func (b *Buffer) WriteChar(ch uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch ch {
	case CodeReturn, CodeShiftReturn:
		b.out = append(b.out, '\n')
	case CodeClear, CodeHome, CodeUp, CodeDown, CodeLeft, CodeRight, CodeDelete:
		// cursor motion is meaningless in a byte buffer
	default:
		if c := ToHost(ch, b.uppercase); c != 0 {
			b.out = append(b.out, c)
		}
	}
}

func (b *Buffer) ReadChar() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.in) == 0 {
		// nothing queued and nothing will arrive: hand back a RETURN so
		// the caller's input loop terminates instead of spinning
		return CodeReturn
	}
	ch := b.in[0]
	b.in = b.in[1:]
	return ch
}

func (b *Buffer) GetIn() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.in) == 0 {
		return 0
	}
	ch := b.in[0]
	b.in = b.in[1:]
	return ch
}

func (b *Buffer) CheckStop() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.stop
	b.stop = false
	return s
}

func (b *Buffer) Push(p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.in = append(append([]byte{}, p...), b.in...)
}

func (b *Buffer) SetColor(fg, bg uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fg, b.bg = fg, bg
}

func (b *Buffer) SetUppercase(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uppercase = on
}

// Append queues host-encoded input as if the user had typed it.
func (b *Buffer) Append(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := 0; i < len(s); i++ {
		b.in = append(b.in, FromHost(s[i]))
	}
}

// RaiseStop arms the STOP key event.
func (b *Buffer) RaiseStop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stop = true
}

// Colors returns the last color pair pushed through SetColor.
func (b *Buffer) Colors() (fg, bg uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fg, b.bg
}

// String returns everything written so far, host encoded.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.out)
}
