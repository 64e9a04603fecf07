// Package mail sends SMTP email with a small fluent builder.
//
//	err := mail.New().
//		To("admin@kashvi.app").
//		Subject("Your OTP").
//		Body("Your verification code is 123456").
//		Send()
package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/shashiranjanraj/kashvi-admin/config"
)

// Sender delivers a composed message. The SMTP implementation is the
// default; tests swap in a recorder.
type Sender interface {
	Deliver(m *Message) error
}

// Message is a pending email being composed.
type Message struct {
	to      []string
	subject string
	body    string
	html    bool

	sender Sender
}

var defaultSender Sender = smtpSender{}

// SetSender replaces the delivery backend. Pass nil to restore SMTP.
func SetSender(s Sender) {
	if s == nil {
		defaultSender = smtpSender{}
		return
	}
	defaultSender = s
}

func New() *Message {
	return &Message{sender: defaultSender}
}

func (m *Message) To(addrs ...string) *Message {
	m.to = append(m.to, addrs...)
	return m
}

func (m *Message) Subject(s string) *Message {
	m.subject = s
	return m
}

func (m *Message) Body(b string) *Message {
	m.body = b
	return m
}

func (m *Message) HTML(b string) *Message {
	m.body = b
	m.html = true
	return m
}

func (m *Message) Recipients() []string { return m.to }
func (m *Message) SubjectLine() string  { return m.subject }
func (m *Message) BodyText() string     { return m.body }

func (m *Message) Send() error {
	if len(m.to) == 0 {
		return fmt.Errorf("mail: no recipients")
	}
	return m.sender.Deliver(m)
}

type smtpSender struct{}

func (smtpSender) Deliver(m *Message) error {
	host := config.MailHost()
	port := config.MailPort()
	from := config.MailFrom()
	addr := fmt.Sprintf("%s:%s", host, port)

	contentType := "text/plain"
	if m.html {
		contentType = "text/html"
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(m.to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", m.subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: %s; charset=UTF-8\r\n", contentType)
	fmt.Fprintf(&msg, "\r\n%s\r\n", m.body)

	var auth smtp.Auth
	if user := config.MailUsername(); user != "" {
		auth = smtp.PlainAuth("", user, config.MailPassword(), host)
	}

	// Port 465 is implicit TLS; everything else goes through STARTTLS
	// when the server offers it.
	if port == "465" {
		return sendImplicitTLS(addr, host, auth, from, m.to, []byte(msg.String()))
	}
	return smtp.SendMail(addr, auth, from, m.to, []byte(msg.String()))
}

func sendImplicitTLS(addr, host string, auth smtp.Auth, from string, to []string, body []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return fmt.Errorf("mail: tls dial: %w", err)
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		return fmt.Errorf("mail: smtp client: %w", err)
	}
	defer c.Close()

	if auth != nil {
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("mail: auth: %w", err)
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}
