package thread

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

// Default answer text rules.
const (
	DefaultMinAnswerLength = 5
	DefaultMaxAnswerLength = 950
)

// DefaultBannedWords are rejected in answer text unless configured otherwise.
var DefaultBannedWords = []string{"ChatGPT", "extension", "curve", "AI"}

// Evaluator checks answer and review text against the forum's writing rules.
type Evaluator struct {
	minLen int
	maxLen int
	// exact holds all-caps words, matched case-sensitively. folded holds
	// the rest, lower-cased.
	exact  map[string]struct{}
	folded map[string]struct{}
}

// NewEvaluator creates an Evaluator. Non-positive bounds fall back to the
// defaults; a nil banned list uses DefaultBannedWords.
func NewEvaluator(minLen, maxLen int, banned []string) *Evaluator {
	if minLen <= 0 {
		minLen = DefaultMinAnswerLength
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxAnswerLength
	}
	if banned == nil {
		banned = DefaultBannedWords
	}

	e := &Evaluator{
		minLen: minLen,
		maxLen: maxLen,
		exact:  make(map[string]struct{}),
		folded: make(map[string]struct{}),
	}
	for _, w := range banned {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if w == strings.ToUpper(w) {
			e.exact[w] = struct{}{}
		} else {
			e.folded[strings.ToLower(w)] = struct{}{}
		}
	}
	return e
}

// Evaluate returns a *domain.ValidationError listing every rule text breaks,
// or nil when it is acceptable.
func (e *Evaluator) Evaluate(text string) error {
	if domain.IsBlank(text) {
		return domain.NewValidationError("text", "required")
	}

	var errs []domain.FieldError
	add := func(msg string) {
		errs = append(errs, domain.FieldError{Field: "text", Message: msg})
	}

	if n := utf8.RuneCountInString(text); n < e.minLen || n > e.maxLen {
		add(fmt.Sprintf("must be between %d and %d characters", e.minLen, e.maxLen))
	}

	if last, _ := utf8.DecodeLastRuneInString(text); last != '.' && last != '?' {
		add("must end with . or ?")
	}

	if first, _ := utf8.DecodeRuneInString(text); unicode.IsLower(first) {
		add("must start with an upper case letter")
	}

	if word, ok := e.bannedWord(text); ok {
		add(fmt.Sprintf("contains prohibited word %q", word))
	}

	if domain.ContainsMarkup(text) {
		add("must not contain markup")
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (e *Evaluator) bannedWord(text string) (string, bool) {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if _, ok := e.exact[w]; ok {
			return w, true
		}
		if _, ok := e.folded[strings.ToLower(w)]; ok {
			return w, true
		}
	}
	return "", false
}
