package core

import "errors"

var (
	ErrNotFound         = errors.New("cicd: not found")
	ErrMethodNotAllowed = errors.New("cicd: method not allowed")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
