package utils

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatGNF formate un montant en francs guinéens : pas de décimales,
// milliers séparés par une espace insécable ("50 000 GNF").
func FormatGNF(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	out := ""
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out += " "
		}
		out += string(d)
	}
	return sign + out + " GNF"
}

// FormatDateFR formate un horodatage au format français JJ/MM/AAAA HH:MM.
func FormatDateFR(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// FormatLongDateFR formate une date ISO (AAAA-MM-JJ) en date longue
// française ("lundi 2 janvier 2026"). En cas d'entrée invalide, la
// chaîne d'origine est renvoyée telle quelle.
func FormatLongDateFR(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%s %d %s %d", frWeekdays[t.Weekday()], t.Day(), frMonths[t.Month()-1], t.Year())
}

var frWeekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var frMonths = [...]string{"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre"}
