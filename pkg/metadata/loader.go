package metadata

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/matzehuels/thirdparty/pkg/errors"
)

// DefaultCargo is the resolver binary used when none is configured.
const DefaultCargo = "cargo"

// metadataArgs are the resolver arguments for machine-readable output.
var metadataArgs = []string{"metadata", "--format-version", "1"}

// Executor runs an external command in dir and returns its captured output.
// When the process runs and fails, err should expose an ExitCode() int method
// (as *exec.ExitError does) so the exit status can be reported.
type Executor interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecExecutor runs commands with os/exec.
type ExecExecutor struct{}

// Run implements Executor.
func (ExecExecutor) Run(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err := cmd.Run()
	return out.Bytes(), errBuf.Bytes(), err
}

// Loader invokes the resolver and decodes its output.
type Loader struct {
	Cargo string   // Resolver binary (default: "cargo")
	Exec  Executor // Command runner (default: ExecExecutor)
}

// NewLoader creates a loader for the given resolver binary.
func NewLoader(cargo string) *Loader {
	if cargo == "" {
		cargo = DefaultCargo
	}
	return &Loader{Cargo: cargo, Exec: ExecExecutor{}}
}

// Load runs the resolver in repoRoot and parses its standard output.
func (l *Loader) Load(ctx context.Context, repoRoot string) (*Metadata, error) {
	cargo := l.Cargo
	if cargo == "" {
		cargo = DefaultCargo
	}
	ex := l.Exec
	if ex == nil {
		ex = ExecExecutor{}
	}

	stdout, stderr, err := ex.Run(ctx, repoRoot, cargo, metadataArgs...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(errors.ErrCodeResolverInvocationFailed, &errors.ResolverError{
			Command:  strings.Join(append([]string{cargo}, metadataArgs...), " "),
			ExitCode: exitCode(err),
			Stderr:   strings.TrimRight(string(stderr), "\n"),
		}, "dependency resolver failed")
	}
	return Parse(stdout)
}

// exitCode extracts the process exit code, or -1 if the process never ran.
func exitCode(err error) int {
	var coded interface{ ExitCode() int }
	if stderrors.As(err, &coded) {
		return coded.ExitCode()
	}
	return -1
}
