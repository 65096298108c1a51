package metadata

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/matzehuels/thirdparty/pkg/errors"
)

type exitError struct{ code int }

func (e *exitError) Error() string { return "exit status" }
func (e *exitError) ExitCode() int { return e.code }

type fakeExecutor struct {
	stdout, stderr string
	err            error

	dir  string
	name string
	args []string
}

func (f *fakeExecutor) Run(_ context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	f.dir, f.name, f.args = dir, name, args
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func TestLoaderLoad(t *testing.T) {
	fake := &fakeExecutor{stdout: sampleJSON}
	l := &Loader{Cargo: "/opt/cargo", Exec: fake}

	m, err := l.Load(context.Background(), "/src/app")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Packages) != 2 {
		t.Errorf("Packages = %d, want 2", len(m.Packages))
	}

	if fake.dir != "/src/app" {
		t.Errorf("dir = %q, want /src/app", fake.dir)
	}
	if fake.name != "/opt/cargo" {
		t.Errorf("name = %q, want /opt/cargo", fake.name)
	}
	if got := strings.Join(fake.args, " "); got != "metadata --format-version 1" {
		t.Errorf("args = %q", got)
	}
}

func TestLoaderNonZeroExit(t *testing.T) {
	fake := &fakeExecutor{
		stderr: "error: could not find `Cargo.toml` in `/src/app` or any parent directory\n",
		err:    &exitError{code: 101},
	}
	l := &Loader{Exec: fake}

	_, err := l.Load(context.Background(), "/src/app")
	if !errors.Is(err, errors.ErrCodeResolverInvocationFailed) {
		t.Fatalf("Load() = %v, want %s", err, errors.ErrCodeResolverInvocationFailed)
	}

	var re *errors.ResolverError
	if !stderrors.As(err, &re) {
		t.Fatalf("cause should be *ResolverError: %v", err)
	}
	if re.ExitCode != 101 {
		t.Errorf("ExitCode = %d, want 101", re.ExitCode)
	}
	if !strings.Contains(re.Stderr, "could not find `Cargo.toml`") {
		t.Errorf("Stderr = %q", re.Stderr)
	}
	if !strings.Contains(err.Error(), "could not find `Cargo.toml`") {
		t.Errorf("error text should carry stderr: %v", err)
	}
	if fake.name != DefaultCargo {
		t.Errorf("default binary = %q, want %q", fake.name, DefaultCargo)
	}
}

func TestLoaderNotStarted(t *testing.T) {
	l := &Loader{Cargo: "cargo", Exec: &fakeExecutor{err: stderrors.New(`exec: "cargo": executable file not found in $PATH`)}}

	_, err := l.Load(context.Background(), ".")
	var re *errors.ResolverError
	if !stderrors.As(err, &re) {
		t.Fatalf("cause should be *ResolverError: %v", err)
	}
	if re.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", re.ExitCode)
	}
}

func TestLoaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &Loader{Exec: &fakeExecutor{err: &exitError{code: -1}}}
	_, err := l.Load(ctx, ".")
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Load() = %v, want context.Canceled", err)
	}
}

func TestLoaderInvalidOutput(t *testing.T) {
	l := &Loader{Exec: &fakeExecutor{stdout: "warning: not json"}}
	_, err := l.Load(context.Background(), ".")
	if !errors.Is(err, errors.ErrCodeInvalidMetadata) {
		t.Errorf("Load() = %v, want %s", err, errors.ErrCodeInvalidMetadata)
	}
}

func TestNewLoaderDefault(t *testing.T) {
	l := NewLoader("")
	if l.Cargo != DefaultCargo {
		t.Errorf("Cargo = %q, want %q", l.Cargo, DefaultCargo)
	}
	if l.Exec == nil {
		t.Error("Exec should default to ExecExecutor")
	}
}
