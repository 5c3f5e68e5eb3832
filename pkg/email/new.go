package email

import (
	"bytes"
	"context"
)

// NewEmail renders an email body from the embedded template for the
// given meta and data.
func NewEmail(ctx context.Context, e EmailMeta, data interface{}) (Email, error) {
	tmpl, err := getEmailTemplate(e.TemplateType)
	if err != nil {
		return Email{}, err
	}

	templateData := map[string]interface{}{}
	collectData(e.TemplateType, data, &templateData)

	var body bytes.Buffer
	if err := tmpl.Execute(&body, templateData); err != nil {
		return Email{}, err
	}

	return Email{
		Recipient: e.Recipient,
		CC:        e.CC,
		Subject:   getEmailSubject(e.TemplateType),
		Body:      body.String(),
	}, nil
}
