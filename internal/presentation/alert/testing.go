package alert

import "sync"

type ViewSpy struct {
	Shown []ViewModel
	lock  sync.Mutex
}

func NewViewSpy() *ViewSpy {
	return &ViewSpy{}
}

func (s *ViewSpy) ShowMessage(viewModel ViewModel) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Shown = append(s.Shown, viewModel)
}

func (s *ViewSpy) ShownCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Shown)
}

func (s *ViewSpy) LastShown() ViewModel {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Shown)
	if l == 0 {
		panic("Shown count is 0.")
	}
	return s.Shown[l-1]
}
