package model

import "errors"

var (
	ErrKindInvalid   = errors.New("address object kind invalid")
	ErrUnknownDriver = errors.New("unknown firewall driver")
	ErrTransport     = errors.New("management plane unreachable")
)
