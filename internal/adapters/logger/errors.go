package logger

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/mia/internal/ui/style"
)

// zerrError describes the parts of a go.trai.ch/zerr error the formatter reads.
type zerrError interface {
	Message() string
	Metadata() map[string]any
	Unwrap() error
}

// joinedError is implemented by errors.Join results.
type joinedError interface {
	Unwrap() []error
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into one entry per message, outermost first.
// zerr errors contribute their own message and metadata; joined errors contribute
// every member in order. Any other error ends the chain with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			switch e := current.(type) {
			case zerrError:
				if e.Message() == "" {
					// zerr.With on a foreign error: keep the metadata for the next entry.
					pending = mergeMetadata(pending, e.Metadata())
					current = e.Unwrap()
					continue
				}
				entries = append(entries, ErrorEntry{
					Message:  e.Message(),
					Metadata: mergeMetadata(e.Metadata(), pending),
				})
				pending = nil
				current = e.Unwrap()
			case joinedError:
				for _, member := range e.Unwrap() {
					walk(member)
				}
				return
			default:
				entry := ErrorEntry{Message: current.Error()}
				if pending != nil {
					entry.Metadata = pending
					pending = nil
				}
				entries = append(entries, entry)
				return
			}
		}
	}
	walk(err)

	if pending != nil && len(entries) > 0 {
		last := &entries[len(entries)-1]
		last.Metadata = mergeMetadata(last.Metadata, pending)
	}

	return entries
}

func mergeMetadata(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// formatErrorEntries renders entries as "Error: ..." followed by a "Caused by:" list.
// Metadata keys are printed in alphabetical order below their message.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		first, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			first, indent = "    "+style.Arrow+" ", "      "
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
