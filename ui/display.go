package ui

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/ratel-online/uno/event"
	"github.com/ratel-online/uno/msg"
)

// Terminal is the hot-seat console: one reader shared by every seat and one
// writer everybody looks at.
type Terminal struct {
	reader *bufio.Reader
	writer io.Writer
	delay  time.Duration
}

// NewTerminal pauses for delay after every printed message.
func NewTerminal(reader io.Reader, writer io.Writer, delay time.Duration) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(reader),
		writer: writer,
		delay:  delay,
	}
}

// Print writes text as is. Messages from msg already end with a newline.
func (t *Terminal) Print(text string) {
	if text == "" {
		return
	}
	_, _ = fmt.Fprint(t.writer, text)
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
}

func (t *Terminal) Printfln(format string, args ...interface{}) {
	t.Print(msg.Sprintfln(format, args...))
}

// OnEvent renders round events as they are emitted.
func (t *Terminal) OnEvent(e event.Event) {
	t.Print(msg.Message.Event(e))
}
