package cmd

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// mu synchronisation is required:
// As TestExecute accepts a pointer to the cobra command,
// concurrent tests will create a race condition.
// This also minimises the race when capturing & restoring os.Stdout & os.Stderr.
var mu sync.Mutex

// TestExecute is a helper that executes a cobra command and returns its combined output and error.
// Output written directly to os.Stdout and os.Stderr is captured as well.
func TestExecute(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	mu.Lock()
	defer mu.Unlock()

	buf := new(syncBuffer)
	command.SetOut(buf)
	command.SetErr(buf)

	storeStdout := os.Stdout
	storeStderr := os.Stderr

	defer func() {
		os.Stdout = storeStdout
		os.Stderr = storeStderr
	}()

	rOut, wOut, err := os.Pipe()
	assert.NoError(t, err)
	rErr, wErr, err := os.Pipe()
	assert.NoError(t, err)

	os.Stdout = wOut
	os.Stderr = wErr

	// drain the pipes while the command runs, so large outputs do not block
	var wg sync.WaitGroup

	wg.Add(2) //nolint:mnd // stdout & stderr

	drain := func(r io.Reader) {
		defer wg.Done()

		_, err := io.Copy(buf, r)
		assert.NoError(t, err)
	}

	go drain(rOut)
	go drain(rErr)

	command.SetArgs(args)
	_, cmdErr := command.ExecuteC()

	assert.NoError(t, wOut.Close())
	assert.NoError(t, wErr.Close())

	wg.Wait()

	return buf.String(), cmdErr
}

// syncBuffer is a helper implementing io.Writer, used for concurrency save testing.
type syncBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.Write(p) //nolint:wrapcheck
}

func (b *syncBuffer) String() string {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.String()
}
