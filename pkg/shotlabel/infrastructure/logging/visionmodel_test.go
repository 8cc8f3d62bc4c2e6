package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"kgeyst.com/shotlabel/pkg/common"
	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

type fixedVisionModel struct {
	text string
	err  error
}

func (f fixedVisionModel) Infer(domain.InferenceRequest) (string, error) {
	return f.text, f.err
}

func TestVisionModelDecorator(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	decorator := NewVisionModelDecorator(fixedVisionModel{text: "a caption"}, common.NewConsoleLogger(&buf))
	text, err := decorator.Infer(domain.InferenceRequest{Model: "llava", RequestID: "req-42", ImageBase64: "c2VjcmV0"})
	if err != nil {
		t.Fatalf("infer returned error: %v", err)
	}
	if text != "a caption" {
		t.Fatalf("unexpected text %q", text)
	}
	output := buf.String()
	if !strings.Contains(output, "req-42") || !strings.Contains(output, "llava") {
		t.Fatalf("expected the request id and model in the log, got %q", output)
	}
	if strings.Contains(output, "c2VjcmV0") {
		t.Fatal("image data must not be logged")
	}
}

func TestVisionModelDecoratorPassesErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inferenceErr := &domain.InferenceError{Op: "test", Err: errors.New("down")}
	decorator := NewVisionModelDecorator(fixedVisionModel{err: inferenceErr}, common.NewConsoleLogger(&buf))
	_, err := decorator.Infer(domain.InferenceRequest{RequestID: "req-7"})
	if !errors.Is(err, inferenceErr) {
		t.Fatalf("expected the wrapped error, got %v", err)
	}
	if !strings.Contains(buf.String(), "req-7") || !strings.Contains(buf.String(), "failed") {
		t.Fatalf("expected the failure in the log, got %q", buf.String())
	}
}
