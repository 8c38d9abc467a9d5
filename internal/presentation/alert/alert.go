package alert

type ViewModel struct {
	Title   string
	Message string
}

type View interface {
	ShowMessage(viewModel ViewModel)
}
