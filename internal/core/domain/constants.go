package domain

import "errors"

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrMalformedMention   = errors.New("not a user mention")
	ErrMemberNotFound     = errors.New("member not found")
)
