// Package gui is the desktop host: a fyne window with the webhook form,
// one tab per submission kind and a shared status line.
package gui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/valpere/postgen/internal/langs"
	"github.com/valpere/postgen/internal/submission"
)

// Localizer renders UI labels.
type Localizer interface {
	T(key string, data map[string]any) string
}

type Options struct {
	Webhook         string
	DefaultLanguage string
}

// Form owns the widgets and keeps them in sync with a submission.Board.
type Form struct {
	controller *submission.Controller
	board      *submission.Board
	labels     Localizer

	Webhook   *widget.Entry
	Language  *widget.Select
	URLInput  *widget.Entry
	TextInput *widget.Entry
	SendURL   *widget.Button
	SendText  *widget.Button
	Status    *widget.Label
	Tabs      *container.AppTabs

	status  binding.String
	results map[submission.Kind]binding.String
	// applied is the Seq of the last snapshot shown; touched on the UI thread only.
	applied uint64

	// run starts a submission; it is a goroutine launcher outside tests.
	run func(func())
}

// NewForm builds the widgets. controller must report to board (see
// submission.WithObserver) for the form to reflect progress.
func NewForm(controller *submission.Controller, board *submission.Board, labels Localizer, opts Options) *Form {
	f := &Form{
		controller: controller,
		board:      board,
		labels:     labels,
		status:     binding.NewString(),
		results: map[submission.Kind]binding.String{
			submission.KindURL:  binding.NewString(),
			submission.KindText: binding.NewString(),
		},
		run: func(fn func()) { go fn() },
	}

	f.Webhook = widget.NewEntry()
	f.Webhook.SetPlaceHolder(labels.T("ui_webhook_hint", nil))
	f.Webhook.SetText(opts.Webhook)

	f.Language = widget.NewSelect(langs.Names(), nil)
	defaultLanguage := opts.DefaultLanguage
	if defaultLanguage == "" {
		defaultLanguage = langs.Default.Name
	}
	f.Language.SetSelected(defaultLanguage)

	f.URLInput = widget.NewEntry()
	f.URLInput.SetPlaceHolder(labels.T("ui_url_hint", nil))

	f.TextInput = widget.NewMultiLineEntry()
	f.TextInput.SetPlaceHolder(labels.T("ui_text_hint", nil))
	f.TextInput.SetMinRowsVisible(4)
	f.TextInput.Wrapping = fyne.TextWrapWord

	f.SendURL = widget.NewButtonWithIcon(labels.T("ui_send_url", nil), theme.MailSendIcon(), func() {
		f.Submit(submission.KindURL)
	})
	f.SendText = widget.NewButtonWithIcon(labels.T("ui_send_text", nil), theme.MailSendIcon(), func() {
		f.Submit(submission.KindText)
	})

	f.Status = widget.NewLabelWithData(f.status)
	f.apply(board.Snapshot())
	board.Subscribe(func(s submission.Snapshot) {
		fyne.Do(func() { f.apply(s) })
	})

	f.Tabs = container.NewAppTabs(
		container.NewTabItemWithIcon(labels.T("ui_tab_url", nil), theme.ComputerIcon(),
			f.tab("ui_url_prompt", "ui_url_label", f.URLInput, f.SendURL, submission.KindURL)),
		container.NewTabItemWithIcon(labels.T("ui_tab_text", nil), theme.DocumentCreateIcon(),
			f.tab("ui_text_prompt", "ui_text_label", f.TextInput, f.SendText, submission.KindText)),
	)

	return f
}

func (f *Form) tab(promptKey, labelKey string, input *widget.Entry, send *widget.Button, kind submission.Kind) fyne.CanvasObject {
	result := widget.NewEntryWithData(f.results[kind])
	result.SetPlaceHolder(f.labels.T("result_label", nil))
	result.Disable()

	return container.NewPadded(container.NewVBox(
		widget.NewLabel(f.labels.T(promptKey, nil)),
		widget.NewLabelWithStyle(f.labels.T(labelKey, nil), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		input,
		container.NewBorder(nil, nil, send, nil, result),
	))
}

// Content lays out the whole window.
func (f *Form) Content() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(f.labels.T("ui_title", nil), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle(f.labels.T("ui_subtitle", nil), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	return container.NewPadded(container.NewVBox(
		title,
		subtitle,
		widget.NewSeparator(),
		widget.NewLabel(f.labels.T("ui_webhook", nil)),
		f.Webhook,
		widget.NewLabel(f.labels.T("ui_language", nil)),
		f.Language,
		widget.NewSeparator(),
		f.Tabs,
		widget.NewSeparator(),
		f.Status,
	))
}

// Submit reads the form for kind and posts it without blocking the UI thread.
func (f *Form) Submit(kind submission.Kind) {
	content := f.URLInput.Text
	if kind == submission.KindText {
		content = f.TextInput.Text
	}

	req := submission.Request{
		Kind:           kind,
		TargetLanguage: f.Language.Selected,
		Content:        content,
		Endpoint:       f.Webhook.Text,
	}
	f.run(func() {
		f.controller.Submit(context.Background(), req)
	})
}

// StatusText returns the bound status line.
func (f *Form) StatusText() string {
	s, _ := f.status.Get()
	return s
}

// ResultText returns the bound result of kind.
func (f *Form) ResultText(kind submission.Kind) string {
	s, _ := f.results[kind].Get()
	return s
}

func (f *Form) apply(s submission.Snapshot) {
	if s.Seq < f.applied {
		return
	}
	f.applied = s.Seq

	_ = f.status.Set(s.Status)
	for kind, b := range f.results {
		_ = b.Set(s.Result(kind))
	}
	f.Status.Importance = importance(s.StatusState)
	f.Status.Refresh()
}

func importance(state submission.State) widget.Importance {
	switch state {
	case submission.Sending:
		return widget.WarningImportance
	case submission.Succeeded:
		return widget.SuccessImportance
	case submission.Failed:
		return widget.DangerImportance
	default:
		return widget.HighImportance
	}
}

// NewWindow opens the main window on app.
func NewWindow(app fyne.App, f *Form, title string) fyne.Window {
	w := app.NewWindow(title)
	w.Resize(fyne.NewSize(600, 750))
	w.SetContent(f.Content())
	return w
}
