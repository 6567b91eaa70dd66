package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	appErrors "selectbox/internal/errors"
	"selectbox/internal/option"
)

const maxLineBytes = 1 << 20

// FromLines reads one option per line: "id<TAB>label", or a bare label that
// doubles as its own id. Blank lines are skipped.
func FromLines(r io.Reader) (option.List, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var opts option.List
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, label, hasTab := strings.Cut(line, "\t")
		if !hasTab {
			label = strings.TrimSpace(line)
			id = label
		}
		id, label = strings.TrimSpace(id), strings.TrimSpace(label)
		if id == "" {
			return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("line %d: empty id", lineNo), nil)
		}
		if label == "" {
			label = id
		}
		opts = append(opts, option.Option{ID: option.StringID(id), DisplayString: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeSourceFailed, "read options", err)
	}
	return finish(opts)
}
