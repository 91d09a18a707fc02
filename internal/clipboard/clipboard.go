package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/celebra-rh/assessment-gateway/internal/model"
)

// Writer copies text to a clipboard. Injected so tests can fake it and so
// headless deployments can run with the copy capability disabled.
type Writer interface {
	Copy(text string) error
}

type systemWriter struct{}

// NewSystemWriter returns a Writer backed by the host clipboard.
func NewSystemWriter() Writer {
	return systemWriter{}
}

func (systemWriter) Copy(text string) error {
	if clipboard.Unsupported {
		return model.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return model.ErrClipboardUnavailable
	}
	return nil
}
