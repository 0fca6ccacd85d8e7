// Package sse decodes server-sent-event streams incrementally, one fed chunk
// at a time, so events split across chunk boundaries reassemble correctly.
package sse

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Event holds the concatenated "data:" payload of one event block.
type Event struct {
	Data string
}

// Decoder is an incremental event-stream parser. Feed it raw bytes in any
// chunking; it emits one Event per blank-line-terminated block.
type Decoder struct {
	buf []byte
}

// Feed appends p to the internal buffer and returns all completed events.
func (d *Decoder) Feed(p []byte) []Event {
	d.buf = append(d.buf, p...)
	var events []Event
	for {
		i := bytes.Index(d.buf, []byte("\n\n"))
		if i < 0 {
			break
		}
		block := d.buf[:i]
		d.buf = d.buf[i+2:]
		if ev, ok := parseBlock(block); ok {
			events = append(events, ev)
		}
	}
	return events
}

// Flush drains a trailing event the stream never terminated.
func (d *Decoder) Flush() []Event {
	block := bytes.TrimRight(d.buf, "\r\n")
	d.buf = nil
	if ev, ok := parseBlock(block); ok {
		return []Event{ev}
	}
	return nil
}

func parseBlock(block []byte) (Event, bool) {
	var data strings.Builder
	found := false
	for _, line := range strings.Split(string(block), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		found = true
		data.WriteString(strings.TrimLeft(strings.TrimPrefix(line, "data:"), " "))
	}
	if !found {
		return Event{}, false
	}
	return Event{Data: data.String()}, true
}

// CollectResponse concatenates the "response" fragments from decoded events,
// stopping at a [DONE] sentinel. Events that fail to parse are skipped.
func CollectResponse(events []Event) string {
	var b strings.Builder
	for _, ev := range events {
		if ev.Data == "[DONE]" {
			break
		}
		var chunk struct {
			Response string `json:"response"`
		}
		if err := json.Unmarshal([]byte(ev.Data), &chunk); err != nil {
			continue
		}
		b.WriteString(chunk.Response)
	}
	return b.String()
}
