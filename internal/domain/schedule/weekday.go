package schedule

import "time"

// WeekdayLocale mapeia o weekday do calendário para a chave usada
// na autoria do template (o editor de horários grava por nome do dia,
// não por índice).
type WeekdayLocale map[time.Weekday]string

var LocaleEN = WeekdayLocale{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

var LocalePT = WeekdayLocale{
	time.Sunday:    "domingo",
	time.Monday:    "segunda",
	time.Tuesday:   "terca",
	time.Wednesday: "quarta",
	time.Thursday:  "quinta",
	time.Friday:    "sexta",
	time.Saturday:  "sabado",
}

// KeyFor resolve a chave do template para a data informada.
// Locale nulo cai no canônico (inglês).
func (l WeekdayLocale) KeyFor(date time.Time) string {
	if l == nil {
		return LocaleEN[date.Weekday()]
	}
	return l[date.Weekday()]
}
