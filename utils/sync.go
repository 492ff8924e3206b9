// Package utils provides utility functions shared across the sandbox.
package utils

import (
	"fmt"
	"os"
	"syscall"
)

// ConfigPipe is a one-shot pipe used to hand a run's JSON configuration
// from the supervisor to the bootstrap child across exec, since the
// child is launched via exec.Command rather than a raw fork the
// supervisor could write into directly.
type ConfigPipe struct {
	reader *os.File
	writer *os.File
}

// NewConfigPipe creates a new configuration pipe.
func NewConfigPipe() (*ConfigPipe, error) {
	fds := make([]int, 2)
	if err := syscall.Pipe2(fds, syscall.O_CLOEXEC); err != nil {
		return nil, fmt.Errorf("pipe: %w", err)
	}
	return &ConfigPipe{
		reader: os.NewFile(uintptr(fds[0]), "configpipe-reader"),
		writer: os.NewFile(uintptr(fds[1]), "configpipe-writer"),
	}, nil
}

// ReaderFile returns the read end, passed to the bootstrap child via
// cmd.ExtraFiles so it lands at a fixed fd across exec.
func (p *ConfigPipe) ReaderFile() *os.File {
	return p.reader
}

// WriterFile returns the write end, held by the supervisor.
func (p *ConfigPipe) WriterFile() *os.File {
	return p.writer
}

// WriteAndClose writes data to the pipe and closes the write end, so the
// child's read returns io.EOF once it has consumed everything.
func (p *ConfigPipe) WriteAndClose(data []byte) error {
	_, err := p.writer.Write(data)
	closeErr := p.writer.Close()
	if err != nil {
		return fmt.Errorf("write config pipe: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("close config pipe writer: %w", closeErr)
	}
	return nil
}

// CloseReader closes the read end. The supervisor calls this after
// Start() returns, since the child's copy of the fd keeps it open.
func (p *ConfigPipe) CloseReader() error {
	return p.reader.Close()
}
