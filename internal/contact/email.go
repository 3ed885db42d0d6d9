package contact

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Email is a rendered notification, ready for a Mailer. Recipient and sender
// addresses belong to the Mailer's configuration.
type Email struct {
	Subject string
	ReplyTo string
	HTML    string
}

var emailTemplate = template.Must(template.New("contact").Funcs(template.FuncMap{
	"lines": func(s string) []string {
		return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	},
}).Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0; }
      .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 10px 10px; }
      .field { margin-bottom: 15px; }
      .label { font-weight: bold; color: #667eea; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header"><h1>New Portfolio Message</h1></div>
      <div class="content">
        <div class="field"><span class="label">Name:</span> {{.Name}}</div>
        <div class="field"><span class="label">Email:</span> {{.Email}}</div>
        <div class="field"><span class="label">Message:</span><br>
          {{range $i, $line := lines .Message}}{{if $i}}<br>{{end}}{{$line}}{{end}}
        </div>
        <div class="field"><span class="label">Timestamp:</span> {{.Timestamp}}</div>
      </div>
    </div>
  </body>
</html>
`))

// Compose renders the notification for a submission received at now.
func Compose(s Submission, now time.Time) (*Email, error) {
	var buf bytes.Buffer
	err := emailTemplate.Execute(&buf, struct {
		Submission
		Timestamp string
	}{s, now.Format("Jan 2, 2006 3:04:05 PM MST")})
	if err != nil {
		return nil, fmt.Errorf("render email: %w", err)
	}
	return &Email{
		Subject: fmt.Sprintf("New message from %s - Portfolio", headerSafe(s.Name)),
		ReplyTo: headerSafe(s.Email),
		HTML:    buf.String(),
	}, nil
}

var headerReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// headerSafe flattens a value so it cannot start a new mail header.
func headerSafe(v string) string {
	return headerReplacer.Replace(v)
}
