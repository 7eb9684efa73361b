package views

import (
	"strings"

	"github.com/rlr-github/rory-themes/internal/tui/ui"
)

// DialogKind selects the title colour of a Dialog.
type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogSuccess
	DialogError
)

// Dialog is a modal notification dismissed with Enter or Esc.
type Dialog struct {
	Kind  DialogKind
	Title string
	Body  string
}

// NewErrorDialog returns an "Error" dialog showing message.
func NewErrorDialog(message string) *Dialog {
	return &Dialog{Kind: DialogError, Title: "Error", Body: message}
}

// NewSuccessDialog returns a "Success" dialog showing message.
func NewSuccessDialog(message string) *Dialog {
	return &Dialog{Kind: DialogSuccess, Title: "Success", Body: message}
}

// NewInfoDialog returns an informational dialog.
func NewInfoDialog(title, message string) *Dialog {
	return &Dialog{Kind: DialogInfo, Title: title, Body: message}
}

// View renders the dialog box.
func (d *Dialog) View(styles ui.Styles) string {
	title := styles.DialogTitle
	switch d.Kind {
	case DialogError:
		title = title.Foreground(styles.Error.GetForeground())
	case DialogSuccess:
		title = title.Foreground(styles.Success.GetForeground())
	}

	var b strings.Builder
	b.WriteString(title.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(d.Body)
	b.WriteString("\n\n")
	b.WriteString(styles.StatusHelp.Render("enter/esc to close"))
	return styles.Dialog.Render(b.String())
}
