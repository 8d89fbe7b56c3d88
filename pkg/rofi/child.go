package rofi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// child wraps one running selector process. Stdout is captured into a
// buffer at spawn time, so decoding never races the pipe teardown done
// by Wait.
type child struct {
	cmd *exec.Cmd
	out *bytes.Buffer
}

// Kill прекратява selector процеса. Безопасно е да се извика и след
// като процесът вече е излязъл.
func (c *child) Kill() error {
	if err := c.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to kill selector: %w", err)
	}
	return nil
}

// wait blocks until the process exits and applies the shared part of the
// decode: non-zero exit means the user cancelled, a single trailing
// newline is stripped, and an empty remainder is a blank selection.
func (c *child) wait() (string, error) {
	if err := c.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("failed to wait for selector: %w", err)
	}

	out := strings.TrimSuffix(c.out.String(), "\n")
	if out == "" {
		return "", ErrBlank
	}
	return out, nil
}

// TextChild is a handle to a selector process spawned for a text answer.
type TextChild struct {
	child
}

// Wait blocks until the selector exits and returns the chosen line
// verbatim. It must be called at most once per handle.
func (c *TextChild) Wait() (string, error) {
	return c.wait()
}

// IndexChild is a handle to a selector process spawned for an index
// answer. It remembers how many candidates were offered so the result
// can be bounds-checked.
type IndexChild struct {
	child
	count int
}

// Wait blocks until the selector exits and returns the chosen index.
// Free text that does not parse as an integer surfaces as a parse
// error; a parsed value outside the offered range returns ErrNotFound.
// It must be called at most once per handle.
func (c *IndexChild) Wait() (int, error) {
	out, err := c.wait()
	if err != nil {
		return 0, err
	}

	idx, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("failed to parse selection index: %w", err)
	}
	if idx < 0 || idx > c.count {
		return 0, ErrNotFound
	}
	return idx, nil
}
