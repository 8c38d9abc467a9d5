package terminalalertview

import (
	"fmt"
	"io"
	"signup/internal/presentation/alert"
	"sync"
)

// TerminalAlertView prints alerts as "title: message" lines.
type TerminalAlertView struct {
	out   io.Writer
	lock  sync.Mutex
	shown int
}

func New(out io.Writer) *TerminalAlertView {
	return &TerminalAlertView{out: out}
}

func (v *TerminalAlertView) ShowMessage(viewModel alert.ViewModel) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.shown++
	fmt.Fprintf(v.out, "%s: %s\n", viewModel.Title, viewModel.Message)
}

func (v *TerminalAlertView) ShownCount() int {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.shown
}
