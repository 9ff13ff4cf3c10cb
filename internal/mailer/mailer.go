package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/BruksfildServices01/barbershop-backend/internal/config"
)

type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		from:     cfg.MailFrom,
	}
}

func (m *Mailer) Send(to []string, subject, htmlBody string) error {
	if m.host == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s\r\n", m.from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	return smtp.SendMail(m.host+":"+m.port, auth, m.username, to, []byte(msg))
}

// SendPasswordReset mails the reset link. The link expires with the token.
func (m *Mailer) SendPasswordReset(to, name, link string) error {
	subject := "Recuperação de senha - BarberShop"
	body := fmt.Sprintf(`
	<p>Olá %s!</p>
	<p>Recebemos um pedido de recuperação de senha. Se foi você, clique no link abaixo:</p>
	<a href="%s" target="_blank">Clique aqui para redefinir sua senha</a>
	<p>O link expira em 20 minutos.</p>
	<p>Se você não solicitou a recuperação de senha, por favor ignore este email.</p>
	<p>Atenciosamente,</p>
	<p>Equipe BarberShop</p>
	`, name, link)

	return m.Send([]string{to}, subject, body)
}
