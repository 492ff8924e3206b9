package utils

import (
	"io"
	"testing"
)

func TestConfigPipeRoundTrip(t *testing.T) {
	p, err := NewConfigPipe()
	if err != nil {
		t.Fatalf("NewConfigPipe() error = %v", err)
	}

	payload := []byte(`{"cmd":"/bin/true"}`)
	done := make(chan error, 1)
	go func() {
		done <- p.WriteAndClose(payload)
	}()

	got, err := io.ReadAll(p.ReaderFile())
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("WriteAndClose() error = %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("read %q, want %q", got, payload)
	}

	if err := p.CloseReader(); err != nil {
		t.Errorf("CloseReader() error = %v", err)
	}
}
