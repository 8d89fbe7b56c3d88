// Package rofi spawns rofi dmenu windows and parses the result.
// The Rofi builder follows the non-consuming builder pattern: prepare a
// window once, then show it any number of times without reconstruction.
// Spawning hands back a child handle which can be killed, or waited on
// to decode the selection as text or as a candidate index.
package rofi

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
)

// DefaultCommand is the selector executable looked up on PATH.
const DefaultCommand = "rofi"

// Rofi configures a dmenu window. The candidate slice passed to New is
// kept by reference, not copied; the caller must keep it alive and
// unmodified for as long as the builder is in use.
type Rofi struct {
	command       string
	elements      []string
	caseSensitive bool
	lines         int
	linesSet      bool
	width         Width
	format        Format
	args          []string
}

// New creates an unconfigured window over the given candidates. The
// defaults are case-insensitive matching, as many lines as there are
// candidates, the theme's width and text return format. An empty
// candidate list is legal: rofi shows an empty menu and any typed
// input becomes the result.
func New(elements []string) *Rofi {
	return &Rofi{
		command:  DefaultCommand,
		elements: elements,
	}
}

// Command overrides the selector executable. The replacement must speak
// the same dmenu protocol.
func (r *Rofi) Command(command string) *Rofi {
	r.command = command
	return r
}

// Pango enables pango markup rows. Calling it twice appends the flag
// twice; flags are accumulated, never deduplicated.
func (r *Rofi) Pango() *Rofi {
	r.args = append(r.args, "-markup-rows")
	return r
}

// Password enables password mode (typed input is obscured).
func (r *Rofi) Password() *Rofi {
	r.args = append(r.args, "-password")
	return r
}

// Lines задава броя редове. Без извикване се използва броят кандидати.
func (r *Rofi) Lines(l int) *Rofi {
	r.lines = l
	r.linesSet = true
	return r
}

// CaseSensitive sets the match case sensitivity (disabled by default).
func (r *Rofi) CaseSensitive(sensitive bool) *Rofi {
	r.caseSensitive = sensitive
	return r
}

// Prompt sets the prompt of the rofi window.
func (r *Rofi) Prompt(prompt string) *Rofi {
	r.args = append(r.args, "-p", prompt)
	return r
}

// Theme makes rofi use ~/.config/rofi/{theme}.rasi. An empty name is a
// no-op.
func (r *Rofi) Theme(theme string) *Rofi {
	if theme != "" {
		r.args = append(r.args, "-theme", theme)
	}
	return r
}

// Width sets the window width, overriding the theme. The value is
// validated immediately; on error the previous width is kept.
func (r *Rofi) Width(w Width) (*Rofi, error) {
	if err := w.Check(); err != nil {
		return r, err
	}
	r.width = w
	return r, nil
}

// ReturnFormat sets how rofi reports the selection. Default is
// FormatText. A later SpawnIndex or RunIndex overwrites the stored
// format with FormatIndex for all subsequent runs.
func (r *Rofi) ReturnFormat(format Format) *Rofi {
	r.format = format
	return r
}

// Args връща натрупаните допълнителни флагове
func (r *Rofi) Args() []string {
	return r.args
}

// Run shows the window and returns the selected line, including pango
// markup if present.
func (r *Rofi) Run() (string, error) {
	c, err := r.Spawn()
	if err != nil {
		return "", err
	}
	return c.Wait()
}

// RunIndex shows the window and returns the index of the selected
// candidate. It permanently switches the stored return format to
// FormatIndex.
func (r *Rofi) RunIndex() (int, error) {
	c, err := r.SpawnIndex()
	if err != nil {
		return 0, err
	}
	return c.Wait()
}

// Spawn starts the prepared window and returns a handle whose Wait
// decodes the selection as text. The builder is only read; it can be
// spawned again at any time.
func (r *Rofi) Spawn() (*TextChild, error) {
	cmd, out, err := r.spawnChild()
	if err != nil {
		return nil, err
	}
	return &TextChild{child{cmd: cmd, out: out}}, nil
}

// SpawnIndex starts the prepared window and returns a handle whose Wait
// decodes the selection as a bounds-checked index. The stored return
// format is forced to FormatIndex, also for later spawns.
func (r *Rofi) SpawnIndex() (*IndexChild, error) {
	r.format = FormatIndex
	cmd, out, err := r.spawnChild()
	if err != nil {
		return nil, err
	}
	return &IndexChild{child: child{cmd: cmd, out: out}, count: len(r.elements)}, nil
}

func (r *Rofi) spawnChild() (*exec.Cmd, *bytes.Buffer, error) {
	args := []string{"-dmenu"}
	args = append(args, r.args...)
	args = append(args, "-format", r.format.arg())

	lines := len(r.elements)
	if r.linesSet {
		lines = r.lines
	}
	args = append(args, "-lines", strconv.Itoa(lines))

	if r.caseSensitive {
		args = append(args, "-case-sensitive")
	} else {
		args = append(args, "-i")
	}
	args = append(args, r.width.args()...)

	cmd := exec.Command(r.command, args...)
	var out bytes.Buffer
	cmd.Stdout = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start %s: %w", r.command, err)
	}

	// Всички кандидати се записват и stdin се затваря преди да се чете
	// output-а. rofi буферира целия вход преди да покаже менюто, така че
	// това не може да блокира върху пълен pipe буфер.
	for _, element := range r.elements {
		if _, err := fmt.Fprintln(stdin, element); err != nil {
			stdin.Close()
			cmd.Process.Kill()
			cmd.Wait()
			return nil, nil, fmt.Errorf("failed to write candidates: %w", err)
		}
	}
	if err := stdin.Close(); err != nil {
		cmd.Process.Kill()
		cmd.Wait()
		return nil, nil, fmt.Errorf("failed to close stdin: %w", err)
	}

	return cmd, &out, nil
}
