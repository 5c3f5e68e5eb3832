package repository

import "repurpose-srv/internal/model"

type SetTranscriptOptions struct {
	URL        string
	Transcript model.Transcript
}

type CreateTranscriptOptions struct {
	ID      string
	UserID  string
	URL     string
	Kind    string
	Content string
	Lang    string
}

type ListTranscriptsOptions struct {
	UserID string
	URL    string
}
