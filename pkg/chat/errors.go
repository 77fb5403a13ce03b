package chat

import "errors"

var (
	ErrEmptyText   = errors.New("message text is empty")
	ErrNoChannel   = errors.New("no channel selected")
	ErrEmptyName   = errors.New("server name is empty")
	ErrInvalidData = errors.New("invalid chat data")
)
