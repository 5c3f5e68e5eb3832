package repository

import "errors"

var (
	ErrTranscriptNotFound     = errors.New("repository: transcript not found")
	ErrTranscriptCreateFailed = errors.New("repository: failed to store transcript")
)
