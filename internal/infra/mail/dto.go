package mail

type WelcomeEmailData struct {
	Username string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
