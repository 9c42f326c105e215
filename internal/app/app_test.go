package app

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"
)

func TestIsTerminalSyncErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "einval", err: &os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}, expected: true},
		{name: "enotty wrapped", err: fmt.Errorf("sync: %w", syscall.ENOTTY), expected: true},
		{name: "other", err: errors.New("disk full"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTerminalSyncErr(tt.err); got != tt.expected {
				t.Errorf("isTerminalSyncErr(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
