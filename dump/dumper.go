// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package dump

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ezrec/rawread/request"
)

// Dumper writes rows of words to an output.
type Dumper struct {
	Sentinels Sentinels    // Words that are not highlighted.
	Highlight *color.Color // Style of highlighted words.

	out io.Writer
}

// NewDumper creates a dumper writing to out, with the default sentinels
// and red highlighting.
func NewDumper(out io.Writer) (dmp *Dumper) {
	dmp = &Dumper{
		Sentinels: DefaultSentinels(),
		Highlight: color.New(color.FgRed),
		out:       out,
	}

	return
}

// Line renders a single row of the view.
func (dmp *Dumper) Line(view []byte, row Row) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "0x%08x:", row.Address)
	for n := range row.Words {
		word := Word(view, row.Offset+n*WORD_SIZE)
		text := fmt.Sprintf(" 0x%08x", word)
		if dmp.Sentinels.Classify(word) == CLASS_ATTENTION {
			text = dmp.Highlight.Sprint(text)
		}
		sb.WriteString(text)
	}

	return sb.String()
}

// Dump writes every row of the request. The view must hold exactly the
// requested span, starting at the request address.
func (dmp *Dumper) Dump(req request.Request, view []byte) (err error) {
	if uint(len(view)) != req.Size() {
		err = ErrViewSize
		return
	}

	wr := bufio.NewWriter(dmp.out)
	for row := range Rows(req) {
		_, err = wr.WriteString(dmp.Line(view, row) + "\n")
		if err != nil {
			return
		}
	}

	err = wr.Flush()
	return
}
