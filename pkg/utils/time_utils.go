package utils

import (
	"fmt"
	"time"
)

// Brazil time location (BRT, -03:00)
var brLoc = func() *time.Location {
	if loc, err := time.LoadLocation("America/Sao_Paulo"); err == nil {
		return loc
	}
	return time.FixedZone("BRT", -3*3600)
}()

var ptBRMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

func NowBR() time.Time { return time.Now().In(brLoc) }

// FormatLongDatePtBR renders a date the way certificates show it,
// e.g. "07 de março de 2026".
func FormatLongDatePtBR(t time.Time) string {
	t = t.In(brLoc)
	return fmt.Sprintf("%02d de %s de %d", t.Day(), ptBRMonths[t.Month()-1], t.Year())
}
