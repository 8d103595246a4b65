package diag

import (
	"fmt"
	"io"
	"os"
)

type ErrorHandler interface {
	AddError(err error)
	FailNow()
}

type RunErrorHandler struct {
	errors []error
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &RunErrorHandler{
		errors: make([]error, 0),
		writer: outputWriter,
	}
}

func (eh *RunErrorHandler) AddError(err error) {
	eh.errors = append(eh.errors, err)
}

func (eh *RunErrorHandler) FailNow() {
	fmt.Fprintln(eh.writer, "Run failed with errors:")

	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: %s\n", err)
	}

	os.Exit(1)
}
