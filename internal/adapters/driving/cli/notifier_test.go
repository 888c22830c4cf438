package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToastNotifier_WritesMessage(t *testing.T) {
	buf := new(bytes.Buffer)
	notifier := NewToastNotifier(buf)

	notifier.Toast("Finished importing highlights.")

	assert.Contains(t, buf.String(), "Finished importing highlights.")
}

func TestToastNotifier_NilWriterDefaultsToStdout(t *testing.T) {
	notifier := NewToastNotifier(nil)
	assert.NotNil(t, notifier.out)
}
