package shortcut

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glyphkey/internal/glyph"
	"glyphkey/internal/input"
)

// desktop имитирует буфер обмена и активное поле ввода.
type desktop struct {
	mu        sync.Mutex
	clip      string
	selection string
	field     string
	events    []string

	copyDelay time.Duration
	readErr   error
	writeErr  error
	pressErr  map[input.Chord]error
}

func (d *desktop) Read() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.readErr != nil {
		return "", d.readErr
	}
	return d.clip, nil
}

func (d *desktop) Write(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, "write")
	if d.writeErr != nil {
		return d.writeErr
	}
	d.clip = text
	return nil
}

func (d *desktop) Press(c input.Chord) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, c.String())
	if err := d.pressErr[c]; err != nil {
		return err
	}
	switch c {
	case input.ChordCopy:
		if d.copyDelay > 0 {
			sel := d.selection
			time.AfterFunc(d.copyDelay, func() {
				d.mu.Lock()
				d.clip = sel
				d.mu.Unlock()
			})
		} else {
			d.clip = d.selection
		}
	case input.ChordPaste:
		d.field = d.clip
	}
	return nil
}

func (d *desktop) snapshot() (clip, field string, events []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clip, d.field, append([]string(nil), d.events...)
}

func boldTable(t *testing.T) *glyph.Table {
	t.Helper()
	tbl, err := glyph.TableFor(glyph.StyleBold)
	require.NoError(t, err)
	return tbl
}

func TestHandleReplacesSelection(t *testing.T) {
	d := &desktop{clip: "old", selection: "Hello, World! 123"}
	h := New(d, d, boldTable(t), WithSettle(time.Second, time.Millisecond))

	out, err := h.Handle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "𝗛𝗲𝗹𝗹𝗼, 𝗪𝗼𝗿𝗹𝗱! 123", out)

	clip, field, events := d.snapshot()
	assert.Equal(t, out, clip)
	assert.Equal(t, out, field)
	assert.Equal(t, []string{"copy", "write", "paste"}, events)
}

func TestHandleWaitsForDelayedCopy(t *testing.T) {
	d := &desktop{clip: "old", selection: "abc", copyDelay: 40 * time.Millisecond}
	h := New(d, d, boldTable(t), WithSettle(2*time.Second, 5*time.Millisecond))

	start := time.Now()
	out, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "𝗮𝗯𝗰", out)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestHandleTimeoutUsesCurrentContent(t *testing.T) {
	// выделение совпадает с буфером: изменения не будет
	d := &desktop{clip: "same", selection: "same"}
	timeout := 30 * time.Millisecond
	h := New(d, d, boldTable(t), WithSettle(timeout, 5*time.Millisecond))

	start := time.Now()
	out, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), timeout)
	assert.Equal(t, "𝘀𝗮𝗺𝗲", out)
}

func TestHandleUnreadableClipboardIsEmpty(t *testing.T) {
	d := &desktop{selection: "text", readErr: errors.New("no clipboard")}
	h := New(d, d, boldTable(t), WithSettle(10*time.Millisecond, time.Millisecond))

	out, err := h.Handle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", out)

	_, _, events := d.snapshot()
	assert.Equal(t, []string{"copy", "write", "paste"}, events)
}

func TestHandleContinuesAfterWriteError(t *testing.T) {
	writeErr := errors.New("selection owner lost")
	d := &desktop{clip: "old", selection: "x", writeErr: writeErr}
	h := New(d, d, boldTable(t), WithSettle(time.Second, time.Millisecond))

	_, err := h.Handle(context.Background())
	assert.ErrorIs(t, err, writeErr)

	_, _, events := d.snapshot()
	assert.Equal(t, []string{"copy", "write", "paste"}, events)
}

func TestHandleContinuesAfterKeyboardErrors(t *testing.T) {
	copyErr := errors.New("xdotool missing")
	pasteErr := errors.New("paste rejected")
	d := &desktop{
		clip:      "left over",
		selection: "ignored",
		pressErr: map[input.Chord]error{
			input.ChordCopy:  copyErr,
			input.ChordPaste: pasteErr,
		},
	}
	h := New(d, d, boldTable(t), WithSettle(10*time.Millisecond, time.Millisecond))

	out, err := h.Handle(context.Background())
	assert.ErrorIs(t, err, copyErr)
	assert.ErrorIs(t, err, pasteErr)
	assert.Equal(t, "𝗹𝗲𝗳𝘁 𝗼𝘃𝗲𝗿", out)

	clip, _, _ := d.snapshot()
	assert.Equal(t, out, clip)
}

func TestHandleCancelledDuringSettle(t *testing.T) {
	d := &desktop{clip: "same", selection: "same"}
	h := New(d, d, boldTable(t), WithSettle(time.Minute, time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := h.Handle(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	clip, _, events := d.snapshot()
	assert.Equal(t, "same", clip)
	assert.Equal(t, []string{"copy"}, events)
}

func TestTriggerCallbacks(t *testing.T) {
	d := &desktop{clip: "old", selection: "Go"}
	h := New(d, d, boldTable(t), WithSettle(time.Second, time.Millisecond))

	var started bool
	var done string
	h.OnStart(func() { started = true })
	h.OnDone(func(text string, err error) {
		assert.NoError(t, err)
		done = text
	})

	h.Trigger()
	assert.True(t, started)
	assert.Equal(t, "𝗚𝗼", done)
}

func TestWithSettleIgnoresZero(t *testing.T) {
	h := New(nil, nil, nil, WithSettle(0, 0))
	assert.Equal(t, DefaultSettleTimeout, h.timeout)
	assert.Equal(t, DefaultPollInterval, h.interval)
}
