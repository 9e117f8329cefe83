package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	f := NoopFileHooks{}
	f.OnImport(ctx, "design.json", time.Millisecond, nil)
	f.OnExport(ctx, "design.json", time.Millisecond, errors.New("disk full"))

	e := NoopEditHooks{}
	e.OnEdit(ctx, "windows", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := File().(NoopFileHooks); !ok {
		t.Error("File() should return NoopFileHooks by default")
	}
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Edit() should return NoopEditHooks by default")
	}

	customFile := &testFileHooks{}
	SetFileHooks(customFile)
	if File() != customFile {
		t.Error("SetFileHooks should set custom hooks")
	}

	customEdit := &testEditHooks{}
	SetEditHooks(customEdit)
	if Edit() != customEdit {
		t.Error("SetEditHooks should set custom hooks")
	}

	Edit().OnEdit(context.Background(), "colors", nil)
	if customEdit.calls != 1 {
		t.Errorf("custom hook called %d times, want 1", customEdit.calls)
	}

	Reset()
	if _, ok := File().(NoopFileHooks); !ok {
		t.Error("Reset() should restore NoopFileHooks")
	}
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Reset() should restore NoopEditHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testFileHooks{}
	SetFileHooks(custom)
	SetFileHooks(nil)

	if File() != custom {
		t.Error("SetFileHooks(nil) should be ignored")
	}
}

type testFileHooks struct{ NoopFileHooks }

type testEditHooks struct {
	NoopEditHooks
	calls int
}

func (h *testEditHooks) OnEdit(context.Context, string, error) { h.calls++ }
