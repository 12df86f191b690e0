package log

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RawLogger records native input records before conversion. It satisfies
// backend.RawTracer.
type RawLogger interface {
	Trace(source string, words ...uint64)
}

type rawLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewRaw creates a RawLogger writing to w. A nil writer discards everything.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

// Trace writes one line: timestamp, source, word count and the words in hex.
func (r *rawLogger) Trace(source string, words ...uint64) {
	if r.w == nil || len(words) == 0 {
		return
	}

	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(w, 16))
	}
	line := fmt.Sprintf("%s %s record: %d words, hex: %s\n",
		r.now().Format("2006/01/02 15:04:05.000"),
		source,
		len(words),
		b.String())

	r.mu.Lock()
	_, _ = io.WriteString(r.w, line)
	r.mu.Unlock()
}
