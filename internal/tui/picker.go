package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
)

// newFilePicker builds the CSV picker. The extension filter is advisory
// UI only; whatever content reaches the server is the server's to
// validate.
func newFilePicker() filepicker.Model {
	picker := filepicker.New()
	picker.AllowedTypes = []string{".csv"}

	if cwd, err := os.Getwd(); err == nil {
		picker.CurrentDirectory = cwd
	}

	return picker
}
