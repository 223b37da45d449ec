package mailer

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/wagnerjunior3121/pc-backend/internal/config"
	"github.com/wagnerjunior3121/pc-backend/pkg/log"
)

// Mailer envia o relatório consolidado em anexo para uma lista de
// destinatários.
type Mailer interface {
	SendReport(ctx context.Context, subject, body string, pdf []byte) error
}

type sendGridMailer struct {
	cfg config.SendGrid
}

func NewSendGridMailer(cfg config.SendGrid) Mailer {
	return &sendGridMailer{cfg: cfg}
}

func (m *sendGridMailer) SendReport(ctx context.Context, subject, body string, pdf []byte) error {
	if len(m.cfg.Recipients) == 0 {
		return errors.New("nenhum destinatário configurado para o relatório")
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(m.cfg.FromName, m.cfg.FromEmail))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, recipient := range m.cfg.Recipients {
		personalization.AddTos(mail.NewEmail("", recipient))
	}
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/html", body))

	if len(pdf) > 0 {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(pdf))
		attachment.SetType("application/pdf")
		attachment.SetFilename("relatorio-consolidado.pdf")
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	}

	client := sendgrid.NewSendClient(m.cfg.APIKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "enviando e-mail pelo SendGrid")
	}

	if response.StatusCode >= 400 {
		return errors.Errorf("SendGrid respondeu %d: %s", response.StatusCode, response.Body)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"destinatarios": len(m.cfg.Recipients),
		"status_code":   response.StatusCode,
	}).Info(fmt.Sprintf("relatório enviado por e-mail: %s", subject))

	return nil
}
