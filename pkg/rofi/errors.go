package rofi

import "errors"

var (
	// ErrInterrupted се връща когато потребителят отмени избора (ESC)
	ErrInterrupted = errors.New("cancelled by user")

	// ErrBlank се връща когато избраният ред е празен
	ErrBlank = errors.New("blank selection")

	// ErrNotFound се връща когато върнатият индекс е извън списъка
	ErrNotFound = errors.New("selection not found")

	// ErrInvalidWidth се връща от Width.Check при невалидна стойност
	ErrInvalidWidth = errors.New("invalid width")
)

// IsCancelled проверява дали грешката е от отказ (ESC)
func IsCancelled(err error) bool {
	return errors.Is(err, ErrInterrupted)
}

// IsNoSelection reports whether err is one of the expected "nothing was
// chosen" outcomes: cancelled, blank line, or index out of range. Callers
// wrapping this package typically map all three to the same user-facing
// behaviour and treat everything else as a hard failure.
func IsNoSelection(err error) bool {
	return errors.Is(err, ErrInterrupted) ||
		errors.Is(err, ErrBlank) ||
		errors.Is(err, ErrNotFound)
}
