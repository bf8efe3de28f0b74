// Package logx — key=value хелперы поверх *log.Logger с подсветкой
// уровня для терминала. Формат: lvl=... req_id=... op=... msg=...
package logx

import (
	"fmt"
	"log"
	"strings"
)

// ANSI-коды; выключаются через Colorize(false) для не-TTY окружений.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorRed    = "\033[91m"
)

var colorize = true

func Colorize(on bool) { colorize = on }

func paint(color, lvl string) string {
	if !colorize {
		return lvl
	}
	return color + lvl + colorReset
}

func Info(l *log.Logger, reqID, op, msg string, kv ...any) {
	l.Printf("lvl=%s req_id=%s op=%s msg=%q%s", paint(colorGreen, "info"), reqID, op, msg, pairs(kv))
}

func Warn(l *log.Logger, reqID, op, msg string, kv ...any) {
	l.Printf("lvl=%s req_id=%s op=%s msg=%q%s", paint(colorYellow, "warn"), reqID, op, msg, pairs(kv))
}

func Error(l *log.Logger, reqID, op, msg string, err error, kv ...any) {
	l.Printf("lvl=%s req_id=%s op=%s msg=%q err=%q%s", paint(colorRed, "error"), reqID, op, msg, fmt.Sprint(err), pairs(kv))
}

// pairs собирает хвост "k=v k=v"; непарный хвост дополняется "?".
func pairs(kv []any) string {
	if len(kv) == 0 {
		return ""
	}
	if len(kv)%2 != 0 {
		kv = append(kv, "?")
	}
	var sb strings.Builder
	for i := 0; i < len(kv); i += 2 {
		sb.WriteString(fmt.Sprintf(" %v=%v", kv[i], kv[i+1]))
	}
	return sb.String()
}
