package commands

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// progressObserver renders run progress as a bar.
type progressObserver struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newProgressObserver(w io.Writer) *progressObserver {
	return &progressObserver{w: w}
}

func (p *progressObserver) Begin(total int) {
	if total <= 0 {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("Processing..."),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(p.w, "\n")
		}),
	)
}

func (p *progressObserver) Advance(string) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *progressObserver) End() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
