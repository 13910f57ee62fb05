package notify

import (
	"bytes"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/wneessen/go-mail"
)

// Mailer transforme commandes et réservations en emails et les remet au
// serveur SMTP du restaurant. Tous les appelants traitent un échec comme
// non fatal : le restaurant garde la liste des commandes du back office
// en solution de repli.
type Mailer struct {
	From      string
	KitchenTo string

	// attempts borne le nombre d'essais d'envoi (2 par défaut).
	attempts int
}

// NewMailerFromEnv construit le Mailer depuis les variables d'environnement
// MAIL_FROM et KITCHEN_EMAIL.
func NewMailerFromEnv() *Mailer {
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "noreply@delices-restaurant.com"
	}
	return &Mailer{
		From:      from,
		KitchenTo: os.Getenv("KITCHEN_EMAIL"),
		attempts:  2,
	}
}

// send construit le message et l'envoie, avec un réessai borné.
// inline référence des images embarquées par Content-ID (cid:nom).
func (m *Mailer) send(to, subject, htmlBody string, inline map[string][]byte) error {
	msg := mail.NewMsg()

	if err := msg.From(m.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	for name, data := range inline {
		msg.EmbedReader(name, bytes.NewReader(data))
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < m.attempts; i++ {
		if i > 0 {
			time.Sleep(2 * time.Second)
		}
		log.Println("📤 Envoi de l'e-mail à", to)
		if lastErr = client.DialAndSend(msg); lastErr == nil {
			return nil
		}
		log.Printf("⚠️ Envoi échoué (essai %d/%d): %v", i+1, m.attempts, lastErr)
	}
	return lastErr
}
