package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "packaging error", err: md2docx.ErrPack, want: ExitPack},
		{name: "wrapped packaging error", err: fmt.Errorf("convert: %w", md2docx.ErrPack), want: ExitPack},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "permission denied", err: os.ErrPermission, want: ExitIO},
		{name: "read markdown failure", err: ErrReadMarkdown, want: ExitIO},
		{name: "write docx failure", err: ErrWriteDOCX, want: ExitIO},
		{name: "write html failure", err: ErrWriteHTML, want: ExitIO},
		{name: "no input", err: ErrNoInput, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse failure", err: config.ErrConfigParse, want: ExitUsage},
		{name: "field too long", err: config.ErrFieldTooLong, want: ExitUsage},
		{name: "empty markdown", err: md2docx.ErrEmptyMarkdown, want: ExitUsage},
		{name: "title too long", err: md2docx.ErrTitleTooLong, want: ExitUsage},
		{name: "no command", err: ErrNoCommand, want: ExitUsage},
		{name: "unknown command", err: ErrUnknownCommand, want: ExitUsage},
		{name: "bad flags", err: ErrBadFlags, want: ExitUsage},
		{name: "invalid extension", err: ErrInvalidExtension, want: ExitUsage},
		{name: "invalid worker count", err: ErrInvalidWorkerCount, want: ExitUsage},
		{name: "invalid timeout", err: ErrInvalidTimeout, want: ExitUsage},
		{name: "unknown error", err: errors.New("something else"), want: ExitGeneral},
		{name: "wrapped io error", err: fmt.Errorf("reading: %w", ErrReadMarkdown), want: ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
