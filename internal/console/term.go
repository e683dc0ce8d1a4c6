package console

import (
	"bufio"
	"os"
	"sync"
	"time"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// ansi escape sequences for the cursor controls WriteChar understands
const (
	ansiClear = "\x1b[2J\x1b[H"
	ansiHome  = "\x1b[H"
	ansiUp    = "\x1b[A"
	ansiDown  = "\x1b[B"
	ansiRight = "\x1b[C"
	ansiLeft  = "\x1b[D"
	ansiReset = "\x1b[0m"
)

// foreground SGR codes for the 16 Commodore colors, nearest ANSI match
var ansiFG = [16]string{
	"30", "37", "31", "36", "35", "32", "34", "33",
	"33", "31", "91", "90", "37", "92", "94", "97",
}

// background SGR codes for the same palette
var ansiBG = [16]string{
	"40", "47", "41", "46", "45", "42", "44", "43",
	"43", "41", "101", "100", "47", "102", "104", "107",
}

// Term is the interactive Console on a POSIX terminal. The tty is put
// into cbreak mode with VMIN=0/VTIME=0 so keyboard polls never block.
// When stdin is not a tty (piped input) it degrades to blocking
// line-buffered reads and GetIn returns only bytes already pending
// (pushback or the rest of a collected line), never new keyboard input.
type Term struct {
	in  *os.File
	out *os.File

	mu      sync.Mutex
	pending []byte // pushback + collected line bytes, PETSCII
	stop    bool

	uppercase bool
	color     bool
	raw       bool
	saved     unix.Termios
	reader    *bufio.Reader
}

// NewTerm wraps stdin/stdout. Call Open before use and Close on the way
// out so the tty attributes are restored.
func NewTerm() *Term {
	return &Term{
		in:        os.Stdin,
		out:       os.Stdout,
		uppercase: true,
	}
}

// Open switches the tty to cbreak mode. A failure to read the terminal
// attributes is not an error: it means input is piped.
func (t *Term) Open() error {
	if err := termios.Tcgetattr(t.in.Fd(), &t.saved); err != nil {
		t.reader = bufio.NewReader(t.in)
		return nil
	}

	attr := t.saved
	termios.Cfmakecbreak(&attr)
	attr.Cc[unix.VMIN] = 0
	attr.Cc[unix.VTIME] = 0
	if err := termios.Tcsetattr(t.in.Fd(), termios.TCIFLUSH, &attr); err != nil {
		return err
	}
	t.raw = true
	t.color = true
	return nil
}

// Close restores the saved tty attributes.
func (t *Term) Close() {
	if t.raw {
		t.out.WriteString(ansiReset)
		termios.Tcsetattr(t.in.Fd(), termios.TCIFLUSH, &t.saved)
		t.raw = false
	}
}

// poll reads one raw host byte without blocking. 0 means no key.
func (t *Term) poll() uint8 {
	if !t.raw {
		return 0
	}
	var buf [1]byte
	n, _ := t.in.Read(buf[:])
	if n == 0 {
		return 0
	}
	return buf[0]
}

// key polls and translates one keypress. ESC arms the STOP event and is
// swallowed.
func (t *Term) key() uint8 {
	b := t.poll()
	if b == 0 {
		return 0
	}
	if b == 0x1b {
		t.mu.Lock()
		t.stop = true
		t.mu.Unlock()
		return 0
	}
	return FromHost(b)
}

func (t *Term) WriteChar(ch uint8) {
	switch ch {
	case CodeReturn, CodeShiftReturn:
		if t.raw {
			t.out.WriteString("\r\n")
		} else {
			t.out.WriteString("\n")
		}
	case CodeClear:
		t.out.WriteString(ansiClear)
	case CodeHome:
		t.out.WriteString(ansiHome)
	case CodeUp:
		t.out.WriteString(ansiUp)
	case CodeDown:
		t.out.WriteString(ansiDown)
	case CodeRight:
		t.out.WriteString(ansiRight)
	case CodeLeft:
		t.out.WriteString(ansiLeft)
	case CodeDelete:
		t.out.WriteString("\b \b")
	default:
		if c := ToHost(ch, t.uppercase); c != 0 {
			t.out.Write([]byte{c})
		}
	}
}

// ReadChar hands out the next byte of the current input line, collecting
// a new line from the keyboard first when none is pending. The final byte
// of every line is CodeReturn.
func (t *Term) ReadChar() uint8 {
	t.mu.Lock()
	if len(t.pending) > 0 {
		ch := t.pending[0]
		t.pending = t.pending[1:]
		t.mu.Unlock()
		return ch
	}
	t.mu.Unlock()

	line := t.collectLine()

	t.mu.Lock()
	t.pending = append(t.pending, line...)
	ch := t.pending[0]
	t.pending = t.pending[1:]
	t.mu.Unlock()
	return ch
}

// collectLine blocks until RETURN, echoing as it goes. Backspace is
// passed through as PETSCII DEL; the BASIC input loop does the actual
// buffer editing.
func (t *Term) collectLine() []byte {
	if !t.raw {
		return t.collectLineBuffered()
	}

	var line []byte
	for {
		ch := t.key()
		if ch == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		switch ch {
		case CodeReturn:
			t.WriteChar(CodeReturn)
			return append(line, CodeReturn)
		case CodeDelete:
			if len(line) > 0 {
				line = append(line, CodeDelete)
				t.WriteChar(CodeDelete)
			}
		default:
			line = append(line, ch)
			t.WriteChar(ch)
		}
	}
}

func (t *Term) collectLineBuffered() []byte {
	var line []byte
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			return append(line, CodeReturn)
		}
		ch := FromHost(b)
		if ch == CodeReturn {
			return append(line, CodeReturn)
		}
		if ch != 0 {
			line = append(line, ch)
		}
	}
}

func (t *Term) GetIn() uint8 {
	t.mu.Lock()
	if len(t.pending) > 0 {
		ch := t.pending[0]
		t.pending = t.pending[1:]
		t.mu.Unlock()
		return ch
	}
	t.mu.Unlock()
	return t.key()
}

func (t *Term) CheckStop() bool {
	// drain the keyboard so an unread ESC is seen
	t.key()

	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.stop
	t.stop = false
	return s
}

func (t *Term) Push(p []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = append(append([]byte{}, p...), t.pending...)
}

func (t *Term) SetColor(fg, bg uint8) {
	if !t.color {
		return
	}
	t.out.WriteString("\x1b[" + ansiFG[fg&0x0f] + ";" + ansiBG[bg&0x0f] + "m")
}

func (t *Term) SetUppercase(on bool) {
	t.uppercase = on
}
