package tasks

// keywords maps a KEYWORD-validated task title to its answer. It is never mutated.
var keywords = map[string]string{
	"How to Analyze Crypto?":       "VALUE",
	"Forks Explained":              "GO GET",
	"Secure your Crypto!":          "BEST PROJECT EVER",
	"Navigating Crypto":            "HEYBLUM",
	"What are Telegram Mini Apps?": "CRYPTOBLUM",
	"Say No to Rug Pull!":          "SUPERBLUM",
}

// Keyword returns the verification keyword for title, or "" when unknown
func Keyword(title string) string {
	return keywords[title]
}
