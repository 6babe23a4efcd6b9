package admin

import "errors"

var (
	ErrRequestNotFound = errors.New("commission request not found")
	ErrEmailSendFailed = errors.New("client email could not be sent")
)
