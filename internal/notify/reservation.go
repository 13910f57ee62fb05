package notify

import (
	"fmt"
	"log"

	"delices_back_end/internal/models"
	"delices_back_end/internal/utils"

	qrcode "github.com/skip2/go-qrcode"
)

// NotifyReservation envoie l'email "nouvelle réservation" au restaurant,
// avec un QR code du numéro de réservation à scanner à l'accueil.
func (m *Mailer) NotifyReservation(res models.Reservation) error {
	subject := fmt.Sprintf("🍽️ Nouvelle réservation %s - %d personnes", res.ReservationNumber, res.PartySize)
	html := RenderReservation(res)

	inline := map[string][]byte{}
	if png, err := qrcode.Encode(res.ReservationNumber, qrcode.Medium, 192); err == nil {
		inline["qr.png"] = png
	} else {
		// Sans QR l'email part quand même : l'information essentielle
		// est dans le corps du message.
		log.Printf("⚠️ QR code non généré pour %s: %v", res.ReservationNumber, err)
	}

	if err := m.send(m.KitchenTo, subject, html, inline); err != nil {
		log.Printf("❌ Email réservation non envoyé pour %s: %v", res.ReservationNumber, err)
		return err
	}

	log.Printf("📧 Réservation %s transmise au restaurant", res.ReservationNumber)
	return nil
}

// RenderReservation génère le HTML de l'email réservation.
func RenderReservation(res models.Reservation) string {
	phone := ""
	if res.CustomerPhone != "" {
		phone = fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Téléphone:</strong> <a href="tel:%s" style="color: #2563eb;">%s</a></p>`,
			res.CustomerPhone, res.CustomerPhone)
	}

	notes := ""
	if res.Notes != "" {
		notes = fmt.Sprintf(`
		<div style="margin-top: 24px; background-color: #fef3c7; border-radius: 8px; padding: 16px;">
			<h3 style="margin: 0 0 8px 0; font-size: 16px; color: #92400e;">📝 Notes du client</h3>
			<p style="margin: 0; color: #78350f;">%s</p>
		</div>`, res.Notes)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; padding: 20px; background-color: #f3f4f6;">
	<div style="max-width: 600px; margin: 0 auto; background-color: white; border-radius: 12px; overflow: hidden;">
		<div style="background-color: #059669; color: white; padding: 24px; text-align: center;">
			<h1 style="margin: 0; font-size: 24px;">🍽️ NOUVELLE RÉSERVATION</h1>
			<p style="margin: 8px 0 0 0; font-size: 28px; font-weight: bold;">%s</p>
		</div>
		<div style="padding: 24px;">
			<div style="background-color: #ecfdf5; border-radius: 8px; padding: 16px; margin-bottom: 24px;">
				<p style="margin: 0; font-size: 18px; color: #065f46; font-weight: bold;">📅 %s à %s</p>
			</div>
			<div style="background-color: #f9fafb; border-radius: 8px; padding: 16px; margin-bottom: 24px;">
				<h2 style="margin: 0 0 12px 0; font-size: 18px; color: #374151;">👤 Client</h2>
				<p style="margin: 4px 0;"><strong>Nom:</strong> %s</p>
				<p style="margin: 4px 0;"><strong>Email:</strong> <a href="mailto:%s" style="color: #2563eb;">%s</a></p>
				%s
			</div>
			<div style="background-color: #059669; color: white; border-radius: 8px; padding: 20px; text-align: center;">
				<p style="margin: 0; font-size: 16px;">NOMBRE DE PERSONNES</p>
				<p style="margin: 8px 0 0 0; font-size: 48px; font-weight: bold;">%d</p>
			</div>
			<div style="margin-top: 24px; text-align: center;">
				<img src="cid:qr.png" alt="%s" width="192" height="192" />
			</div>
			%s
		</div>
		<div style="background-color: #f9fafb; padding: 16px; text-align: center; border-top: 1px solid #e5e7eb;">
			<p style="margin: 0; font-size: 14px; color: #6b7280;">Délices Restaurant - Système de réservation en ligne</p>
		</div>
	</div>
</body>
</html>`,
		res.ReservationNumber,
		utils.FormatLongDateFR(res.ReservationDate), res.ReservationTime,
		res.CustomerName,
		res.CustomerEmail, res.CustomerEmail,
		phone,
		res.PartySize,
		res.ReservationNumber,
		notes,
	)
}
