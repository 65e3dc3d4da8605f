package entities

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxMessageLength = 4000

// Message сообщение чата заказа. Создаётся один раз и больше не меняется.
type Message struct {
	ID        string
	OrderID   string
	Seq       int64
	SenderID  string
	Text      string
	Timestamp time.Time
}

// NormalizeMessageText trims the text and rejects empty, oversized or unstorable messages.
func NormalizeMessageText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: message text is empty", ErrValidation)
	}
	if err := CheckText("message", text); err != nil {
		return "", err
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return "", fmt.Errorf("%w: message is longer than %d characters", ErrValidation, MaxMessageLength)
	}
	return text, nil
}

// CheckText отклоняет строки, которые Postgres не сохранит в TEXT: невалидный UTF-8 и NUL.
func CheckText(field, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s is not valid UTF-8", ErrValidation, field)
	}
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %s contains a NUL character", ErrValidation, field)
	}
	return nil
}
