package domain

import "errors"

// BaudRate is the serial line speed in bits per second.
type BaudRate int

// NewBaudRate validates the given value and returns it as a BaudRate.
func NewBaudRate(value int) (BaudRate, error) {
	if value <= 0 {
		return 0, errors.New("baud rate must be greater than 0")
	}
	return BaudRate(value), nil
}
