package email

import (
	"fmt"
	"html/template"
)

// Return raw template for email
func getEmailTemplate(templateType string) (*template.Template, error) {
	tmplFile := fmt.Sprintf("%s.tmpl", templateType)
	tmplPath := fmt.Sprintf("templates/%s", tmplFile)
	return template.New(tmplFile).ParseFS(emailTemplates, tmplPath)
}

// Collect data to email template
func collectData(templateType string, data interface{}, templateData *map[string]interface{}) {
	switch templateType {
	case MagicCodeTemplate:
		d := data.(MagicCode)
		(*templateData)["Email"] = d.Email
		(*templateData)["Code"] = d.Code
		(*templateData)["CodeExpireMin"] = d.CodeExpireMin
	}
}

// Return email subject
func getEmailSubject(templateType string) string {
	switch templateType {
	case MagicCodeTemplate:
		return "Your sign-in code"
	}
	return ""
}
