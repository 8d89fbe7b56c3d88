package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lvim-tech/rofi/pkg/config"
	"github.com/lvim-tech/rofi/pkg/rofi"
)

// options са разрешените настройки: config defaults, override-нати от flags
type options struct {
	command       string
	prompt        string
	theme         string
	caseSensitive bool
	markup        bool
	password      bool
	lines         int
	widthMode     string
	widthValue    int
	format        string
}

func optionsFromConfig(cfg *config.SelectorConfig) *options {
	return &options{
		command:       cfg.Command,
		prompt:        cfg.Prompt,
		theme:         cfg.Theme,
		caseSensitive: cfg.CaseSensitive,
		markup:        cfg.Markup,
		password:      cfg.Password,
		lines:         cfg.Lines,
		widthMode:     cfg.Width.Mode,
		widthValue:    cfg.Width.Value,
		format:        "text",
	}
}

// buildSelector превръща options в конфигуриран rofi builder
func buildSelector(opts *options, candidates []string) (*rofi.Rofi, error) {
	sel := rofi.New(candidates).
		Prompt(opts.prompt).
		Theme(opts.theme).
		CaseSensitive(opts.caseSensitive)

	if opts.command != "" {
		sel.Command(opts.command)
	}
	if opts.markup {
		sel.Pango()
	}
	if opts.password {
		sel.Password()
	}
	if opts.lines > 0 {
		sel.Lines(opts.lines)
	}

	width, err := parseWidth(opts.widthMode, opts.widthValue)
	if err != nil {
		return nil, err
	}
	if _, err := sel.Width(width); err != nil {
		return nil, err
	}

	format, err := parseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	sel.ReturnFormat(format)

	return sel, nil
}

func parseWidth(mode string, value int) (rofi.Width, error) {
	switch mode {
	case "", "none":
		return rofi.Width{}, nil
	case "percentage":
		return rofi.Percentage(value), nil
	case "pixels":
		return rofi.Pixels(value), nil
	case "characters":
		return rofi.Characters(value), nil
	default:
		return rofi.Width{}, fmt.Errorf("unknown width mode: %s", mode)
	}
}

func parseFormat(name string) (rofi.Format, error) {
	switch name {
	case "", "text":
		return rofi.FormatText, nil
	case "stripped":
		return rofi.FormatStrippedText, nil
	case "input":
		return rofi.FormatUserInput, nil
	default:
		return rofi.FormatText, fmt.Errorf("unknown format: %s", name)
	}
}

// readCandidates чете кандидатите ред по ред от stdin
func readCandidates(r io.Reader) ([]string, error) {
	var candidates []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		candidates = append(candidates, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return candidates, nil
}

// mapSelectorErr превежда "nothing chosen" резултатите към exit code 1
func mapSelectorErr(err error) error {
	if rofi.IsNoSelection(err) {
		return errNoSelection
	}
	return err
}
