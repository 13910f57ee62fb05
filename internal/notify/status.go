package notify

import (
	"fmt"
	"log"

	"delices_back_end/internal/models"
	"delices_back_end/internal/utils"
)

// NotifyReservationStatus prévient le client d'un changement de statut de
// sa réservation (confirmée ou annulée). Les autres statuts ne donnent pas
// lieu à un email.
func (m *Mailer) NotifyReservationStatus(res models.Reservation) error {
	if res.Status != models.ReservationConfirmed && res.Status != models.ReservationCancelled {
		return nil
	}

	subject := reservationStatusSubject(res.Status)
	html := RenderReservationStatus(res)

	if err := m.send(res.CustomerEmail, subject, html, nil); err != nil {
		log.Printf("❌ Email de statut non envoyé pour %s: %v", res.ReservationNumber, err)
		return err
	}

	log.Printf("📧 Email de statut envoyé: %s → %s", res.Status, res.CustomerEmail)
	return nil
}

func reservationStatusSubject(status models.ReservationStatus) string {
	switch status {
	case models.ReservationConfirmed:
		return "✅ Votre réservation est confirmée - Délices"
	case models.ReservationCancelled:
		return "❌ Votre réservation a été annulée - Délices"
	default:
		return "📋 Mise à jour de votre réservation - Délices"
	}
}

func reservationStatusMessage(status models.ReservationStatus) (icon, color, message string) {
	switch status {
	case models.ReservationConfirmed:
		return "✅", "#059669", "Votre table est réservée, nous vous attendons !"
	case models.ReservationCancelled:
		return "❌", "#dc2626", "Votre réservation a été annulée. Contactez-nous pour toute question."
	default:
		return "📋", "#374151", "Le statut de votre réservation a changé."
	}
}

// RenderReservationStatus génère le HTML de l'email de changement de statut.
func RenderReservationStatus(res models.Reservation) string {
	icon, color, message := reservationStatusMessage(res.Status)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; padding: 20px; background-color: #f3f4f6;">
	<div style="max-width: 600px; margin: 0 auto; background-color: white; border-radius: 12px; overflow: hidden;">
		<div style="background-color: %s; color: white; padding: 24px; text-align: center;">
			<h1 style="margin: 0; font-size: 24px;">%s Réservation %s</h1>
		</div>
		<div style="padding: 24px;">
			<p style="margin: 0 0 16px 0;">Bonjour %s,</p>
			<p style="margin: 0 0 24px 0;">%s</p>
			<div style="background-color: #f9fafb; border-radius: 8px; padding: 16px;">
				<p style="margin: 4px 0;"><strong>📅 Date:</strong> %s à %s</p>
				<p style="margin: 4px 0;"><strong>👥 Personnes:</strong> %d</p>
			</div>
			<p style="margin-top: 30px; color: #555;">
				Cordialement,<br>
				<strong>L'équipe Délices</strong>
			</p>
		</div>
	</div>
</body>
</html>`,
		color, icon, res.ReservationNumber,
		res.CustomerName,
		message,
		utils.FormatLongDateFR(res.ReservationDate), res.ReservationTime,
		res.PartySize,
	)
}
