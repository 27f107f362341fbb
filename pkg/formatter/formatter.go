package formatter

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber groups thousands with commas: 1234567 -> "1,234,567".
func FormatNumber(n int) string {
	digits := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// Plural renders n with the singular or plural noun: "1 other", "1,233 others".
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return FormatNumber(n) + " " + plural
}

// LikedBy renders the "liked by" line of a post from its most recent liker and the total count.
// It is empty for posts nobody liked.
func LikedBy(username string, total int) string {
	switch {
	case total <= 0 || username == "":
		return ""
	case total == 1:
		return fmt.Sprintf("Liked by %s", username)
	default:
		return fmt.Sprintf("Liked by %s and %s", username, Plural(total-1, "other", "others"))
	}
}
