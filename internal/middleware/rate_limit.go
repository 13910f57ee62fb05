package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"delices_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	// Limites par endpoint
	CheckoutMaxAttempts    = 5
	ReservationMaxAttempts = 3
	LoginMaxAttempts       = 5

	// Fenêtres de comptage
	CheckoutWindow    = 10 * time.Minute
	ReservationWindow = 30 * time.Minute
	LoginWindow       = 15 * time.Minute
)

// CheckoutRateLimit borne le nombre de commandes par numéro de téléphone.
// Protège la cuisine contre les soumissions en rafale sans gêner un client
// légitime qui réessaie après une erreur.
func CheckoutRateLimit() gin.HandlerFunc {
	return bodyFieldLimit("customer_phone", "checkout", CheckoutMaxAttempts, CheckoutWindow,
		"Trop de commandes envoyées. Réessayez dans %d minutes")
}

// ReservationRateLimit borne le nombre de réservations par email.
func ReservationRateLimit() gin.HandlerFunc {
	return bodyFieldLimit("customer_email", "reservation", ReservationMaxAttempts, ReservationWindow,
		"Trop de réservations envoyées. Réessayez dans %d minutes")
}

// LoginRateLimit borne les tentatives de connexion par email.
func LoginRateLimit() gin.HandlerFunc {
	return bodyFieldLimit("email", "login", LoginMaxAttempts, LoginWindow,
		"Trop de tentatives. Réessayez dans %d minutes")
}

// bodyFieldLimit lit un champ JSON du body sans le consommer et compte les
// passages par valeur de champ dans Redis.
func bodyFieldLimit(field, scope string, max int, window time.Duration, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		value := jsonField(bodyBytes, field)
		if value == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := fmt.Sprintf("ratelimit:%s:%s", scope, value)

		count, err := database.Redis.Incr(ctx, key).Result()
		if err != nil {
			// Redis en panne : on laisse passer plutôt que de bloquer
			// les commandes.
			c.Next()
			return
		}
		if count == 1 {
			database.Redis.Expire(ctx, key, window)
		}

		if count > int64(max) {
			ttl := database.Redis.TTL(ctx, key).Val()
			minutes := int(ttl.Minutes()) + 1
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf(message, minutes),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// jsonField extrait un champ string de premier niveau d'un body JSON.
// Tolérant : un body illisible retourne simplement "".
func jsonField(body []byte, field string) string {
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	v, _ := m[field].(string)
	return strings.TrimSpace(strings.ToLower(v))
}

// ResetLimit efface le compteur d'une valeur (après un login réussi).
func ResetLimit(ctx context.Context, scope, value string) {
	database.Redis.Del(ctx, fmt.Sprintf("ratelimit:%s:%s", scope, strings.TrimSpace(strings.ToLower(value))))
}
