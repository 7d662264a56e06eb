package session

// ANSI escape sequences used for verdicts and headings.
const (
	Red                 = "\x1B[31m"
	Green               = "\x1B[32m"
	YellowWithUnderline = "\x1B[4;33m"
	Reset               = "\x1B[0m"
)

func colour(code, text string) string {
	return code + text + Reset
}
