package email

import "embed"

//go:embed templates/*
var emailTemplates embed.FS

const (
	// MagicCodeTemplate is the sign-in code email template.
	MagicCodeTemplate = "magic_code"
)
