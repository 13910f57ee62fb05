package notify

import (
	"fmt"
	"log"
	"strings"

	"delices_back_end/internal/models"
	"delices_back_end/internal/utils"
)

// NotifyKitchen envoie l'email "nouvelle commande" à la cuisine.
func (m *Mailer) NotifyKitchen(order models.Order) error {
	subject := fmt.Sprintf("🔔 Nouvelle commande %s - %s", order.OrderNumber, order.OrderType.Label())
	html := RenderKitchenOrder(order)

	if err := m.send(m.KitchenTo, subject, html, nil); err != nil {
		log.Printf("❌ Email cuisine non envoyé pour %s: %v", order.OrderNumber, err)
		return err
	}

	log.Printf("📧 Commande %s transmise à la cuisine", order.OrderNumber)
	return nil
}

// RenderKitchenOrder génère le HTML de l'email cuisine : lignes de la
// commande, coordonnées du client, type, mode de paiement et total.
func RenderKitchenOrder(order models.Order) string {
	var items strings.Builder
	for _, it := range order.Items {
		items.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 12px; border-bottom: 1px solid #e5e7eb; text-align: left;">%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #e5e7eb; text-align: center; font-weight: bold;">%d</td>
				<td style="padding: 12px; border-bottom: 1px solid #e5e7eb; text-align: right;">%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #e5e7eb; text-align: right; font-weight: bold;">%s</td>
			</tr>`,
			it.Name, it.Quantity, utils.FormatGNF(it.Price), utils.FormatGNF(it.LineTotal())))
	}

	address := ""
	if order.CustomerAddress != "" {
		address = fmt.Sprintf(`<p style="margin: 4px 0;"><strong>Adresse:</strong> %s</p>`, order.CustomerAddress)
	}

	notes := ""
	if order.Notes != "" {
		notes = fmt.Sprintf(`
		<div style="margin-top: 24px; background-color: #fef3c7; border-radius: 8px; padding: 16px;">
			<h3 style="margin: 0 0 8px 0; font-size: 16px; color: #92400e;">📝 Notes du client</h3>
			<p style="margin: 0; color: #78350f;">%s</p>
		</div>`, order.Notes)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; padding: 20px; background-color: #f3f4f6;">
	<div style="max-width: 600px; margin: 0 auto; background-color: white; border-radius: 12px; overflow: hidden;">
		<div style="background-color: #dc2626; color: white; padding: 24px; text-align: center;">
			<h1 style="margin: 0; font-size: 24px;">🔔 NOUVELLE COMMANDE</h1>
			<p style="margin: 8px 0 0 0; font-size: 28px; font-weight: bold;">%s</p>
		</div>
		<div style="padding: 24px;">
			<div style="background-color: #fef3c7; border-radius: 8px; padding: 16px; margin-bottom: 24px;">
				<p style="margin: 0; font-size: 14px; color: #92400e;"><strong>📅 Date:</strong> %s</p>
			</div>
			<div style="background-color: #f9fafb; border-radius: 8px; padding: 16px; margin-bottom: 24px;">
				<h2 style="margin: 0 0 12px 0; font-size: 18px; color: #374151;">👤 Client</h2>
				<p style="margin: 4px 0;"><strong>Nom:</strong> %s</p>
				<p style="margin: 4px 0;"><strong>Téléphone:</strong> <a href="tel:%s" style="color: #2563eb;">%s</a></p>
				%s
			</div>
			<div style="margin-bottom: 24px;">
				<span style="background-color: #dbeafe; color: #1e40af; padding: 8px 16px; border-radius: 20px; font-size: 14px;">%s</span>
				<span style="background-color: #dcfce7; color: #166534; padding: 8px 16px; border-radius: 20px; font-size: 14px;">%s</span>
			</div>
			<h2 style="margin: 0 0 12px 0; font-size: 18px; color: #374151;">📦 Articles commandés</h2>
			<table style="width: 100%%; border-collapse: collapse; margin-bottom: 24px;">
				<thead>
					<tr style="background-color: #f3f4f6;">
						<th style="padding: 12px; text-align: left; color: #374151;">Article</th>
						<th style="padding: 12px; text-align: center; color: #374151;">Qté</th>
						<th style="padding: 12px; text-align: right; color: #374151;">Prix</th>
						<th style="padding: 12px; text-align: right; color: #374151;">Total</th>
					</tr>
				</thead>
				<tbody>%s</tbody>
			</table>
			<div style="background-color: #dc2626; color: white; border-radius: 8px; padding: 20px; text-align: center;">
				<p style="margin: 0; font-size: 16px;">TOTAL À PAYER</p>
				<p style="margin: 8px 0 0 0; font-size: 32px; font-weight: bold;">%s</p>
			</div>
			%s
		</div>
		<div style="background-color: #f9fafb; padding: 16px; text-align: center; border-top: 1px solid #e5e7eb;">
			<p style="margin: 0; font-size: 14px; color: #6b7280;">Délices Restaurant - Système de commande en ligne</p>
		</div>
	</div>
</body>
</html>`,
		order.OrderNumber,
		utils.FormatDateFR(order.CreatedAt),
		order.CustomerName,
		order.CustomerPhone, order.CustomerPhone,
		address,
		order.OrderType.Label(),
		order.PaymentMethod.Label(),
		items.String(),
		utils.FormatGNF(order.Total),
		notes,
	)
}
