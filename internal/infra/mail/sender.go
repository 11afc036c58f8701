package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

// welcomeTemplate is inlined so the binary has no runtime file dependency.
var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2933;">
    <h2>Welcome to ProspectFinder, {{.Username}}!</h2>
    <p>Your account is ready. Run your first search, save the filters that
       work, and build your prospect lists from one place.</p>
    <p>Happy prospecting!</p>
    <p style="color: #7b8794; font-size: 12px;">
      You are receiving this email because an account was created with this
      address.
    </p>
  </body>
</html>
`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendWelcome(to, username string) error {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, WelcomeEmailData{Username: username}); err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to ProspectFinder, %s! 🚀", username))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email over SMTP: %w", err)
	}

	return nil
}
