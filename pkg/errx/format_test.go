package errx

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_UserString(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := New(CodeCLI, DescCLI, "test")
		if UserString(err) != "test" {
			t.Errorf("UserString(err) = %q, want %q", UserString(err), "test")
		}
	})
	t.Run("without message, with description", func(t *testing.T) {
		err := New(CodeCLI, DescCLI, "")
		if UserString(err) != DescCLI {
			t.Errorf("UserString(err) = %q, want %q", UserString(err), DescCLI)
		}
	})
	t.Run("wrapped by fmt.Errorf", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(CodeConfig, DescConfig, "bad config"))
		if UserString(err) != "bad config" {
			t.Errorf("UserString(err) = %q, want %q", UserString(err), "bad config")
		}
	})
	t.Run("with nil error", func(t *testing.T) {
		if UserString(nil) != "" {
			t.Errorf("UserString(nil) = %q, want empty string", UserString(nil))
		}
	})
	t.Run("with non-errx error", func(t *testing.T) {
		err := errors.New("standard error")
		if UserString(err) != "standard error" {
			t.Errorf("UserString(err) = %q, want %q", UserString(err), "standard error")
		}
	})
}

func TestFormat_IsError(t *testing.T) {
	if !IsError(New(CodeCLI, DescCLI, "test")) {
		t.Error("IsError(errx) = false, want true")
	}
	if IsError(errors.New("test")) {
		t.Error("IsError(std) = true, want false")
	}
	if IsError(nil) {
		t.Error("IsError(nil) = true, want false")
	}
}

func TestFormat_DebugString(t *testing.T) {
	t.Run("with errx.Error", func(t *testing.T) {
		err := New(CodeCatalog, DescCatalog, "test")
		got := DebugString(err)
		want := "1: *errx.Error: test | code=62000 | description=\"Catalog error\" | message=\"test\""
		if got != want {
			t.Errorf("DebugString(err) = %q, want %q", got, want)
		}
	})
	t.Run("with context", func(t *testing.T) {
		err := New(CodeCatalog, DescCatalog, "test").
			WithContext("path", "errors.yaml").
			WithContext("entry", 2)
		got := DebugString(err)
		want := "1: *errx.Error: test | code=62000 | description=\"Catalog error\" | message=\"test\" | context={entry=2, path=errors.yaml}"
		if got != want {
			t.Errorf("DebugString(err) = %q, want %q", got, want)
		}
	})
	t.Run("with cause chain", func(t *testing.T) {
		cause := errors.New("underlying cause")
		got := DebugString(Wrap(CodeCLI, DescCLI, "wrapped error", cause))
		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("DebugString(err) lines = %d, want 2: %q", len(lines), got)
		}
		if lines[1] != "2: *errors.errorString: underlying cause" {
			t.Errorf("second line = %q", lines[1])
		}
	})
	t.Run("with errors.Join", func(t *testing.T) {
		got := DebugString(errors.Join(errors.New("error1"), errors.New("error2")))
		if !strings.Contains(got, "error1") || !strings.Contains(got, "error2") {
			t.Errorf("DebugString(joined) = %q, want both errors", got)
		}
	})
	t.Run("with nil error", func(t *testing.T) {
		if DebugString(nil) != "" {
			t.Errorf("DebugString(nil) = %q, want empty string", DebugString(nil))
		}
	})
}

func TestFormat_Fields(t *testing.T) {
	t.Run("with context and cause", func(t *testing.T) {
		err := WrapCatalog("failed to parse catalog", errors.New("yaml error")).
			WithContext("path", "errors.yaml")

		fields := Fields(fmt.Errorf("load: %w", err))

		assert.Equal(t, map[string]any{
			"error.code":         CodeCatalog,
			"error.category":     DescCatalog,
			"error.message":      "failed to parse catalog",
			"error.context.path": "errors.yaml",
			"error.cause":        "yaml error",
		}, fields)
	})
	t.Run("with non-errx error", func(t *testing.T) {
		assert.Nil(t, Fields(errors.New("plain")))
	})
}

func TestFormat_flattenChain(t *testing.T) {
	cause := errors.New("cause")
	err := Wrap(CodeCLI, DescCLI, "test", cause)

	result := flattenChain(err)
	if len(result) != 2 || result[0] != err || result[1] != cause {
		t.Errorf("flattenChain(err) = %v, want [err cause]", result)
	}
	if got := flattenChain(nil); len(got) != 0 {
		t.Errorf("flattenChain(nil) length = %d, want 0", len(got))
	}
}

func TestFormat_unwrapAll(t *testing.T) {
	err1 := errors.New("error1")
	err2 := errors.New("error2")

	if got := unwrapAll(errors.Join(err1, err2)); len(got) != 2 || got[0] != err1 || got[1] != err2 {
		t.Errorf("unwrapAll(joined) = %v, want [error1 error2]", got)
	}
	if got := unwrapAll(New(CodeCLI, DescCLI, "test")); got != nil {
		t.Errorf("unwrapAll(no cause) = %v, want nil", got)
	}
	if got := unwrapAll(err1); got != nil {
		t.Errorf("unwrapAll(std) = %v, want nil", got)
	}
}

func TestFormat_formatContext(t *testing.T) {
	if got := formatContext(map[string]any{"key2": "value2", "key1": "value1"}); got != "key1=value1, key2=value2" {
		t.Errorf("formatContext() = %q, want sorted keys", got)
	}
	if got := formatContext(nil); got != "" {
		t.Errorf("formatContext(nil) = %q, want empty string", got)
	}
}
