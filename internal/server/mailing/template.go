package mailing

import (
	"bytes"
	"fmt"
	"text/template"
)

var templates = template.Must(template.New(TemplateResetPassword).Parse(
	`Hello {{.name}},

Use the code below to change your password:

    {{.code}}

If you did not request a password change, you can ignore this message.
`))

func renderTemplate(name string, payload map[string]any) (string, error) {
	t := templates.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("unknown mail template: %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, payload); err != nil {
		return "", fmt.Errorf("error rendering mail template %q: %w", name, err)
	}

	return buf.String(), nil
}
