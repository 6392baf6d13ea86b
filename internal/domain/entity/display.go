package entity

// Ellipsis маркер обрезанной строки дисплея.
const Ellipsis = "..."

// MaxDisplayLines число строк на дисплее.
const MaxDisplayLines = 3

// DisplayLines строки для вывода на дисплей, не больше MaxDisplayLines.
type DisplayLines []string

// NewDisplayLines обрезает каждую строку до бюджета символов и оставляет первые MaxDisplayLines строк.
func NewDisplayLines(maxChars int, lines ...string) DisplayLines {
	if len(lines) > MaxDisplayLines {
		lines = lines[:MaxDisplayLines]
	}
	out := make(DisplayLines, 0, len(lines))
	for _, l := range lines {
		out = append(out, Truncate(l, maxChars))
	}
	return out
}

// Truncate укорачивает строку до maxChars символов, заканчивая её многоточием.
// Строки не длиннее бюджета возвращаются без изменений.
// При maxChars <= 0 обрезки нет, при бюджете меньше 4 многоточие не помещается и строка просто обрезается;
// config.Load не допускает таких бюджетов для дисплея.
func Truncate(s string, maxChars int) string {
	runes := []rune(s)
	if maxChars <= 0 || len(runes) <= maxChars {
		return s
	}
	keep := maxChars - len(Ellipsis)
	if keep <= 0 {
		return string(runes[:maxChars])
	}
	return string(runes[:keep]) + Ellipsis
}

// Clip обрезает строку до n символов без маркера.
func Clip(s string, n int) string {
	runes := []rune(s)
	if n < 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
