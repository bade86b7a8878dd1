package exercise

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"wortschatz/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AnswerState is the per-item state of the write drill
type AnswerState int

const (
	Unanswered AnswerState = iota
	Checked
)

// WriteDrill shows the translations and asks for the German word.
// It walks the permutation once and finishes after the last item.
type WriteDrill struct {
	session *Session[domain.Word]
	state   AnswerState
	input   string
	correct bool
	score   int
}

// NewWriteDrill opens a write-the-word session over pool
func NewWriteDrill(pool []domain.Word, rng *rand.Rand) *WriteDrill {
	d := &WriteDrill{session: NewSession(pool, rng)}
	d.Restart()
	return d
}

// Restart reshuffles and starts again from the first item with a zero score
func (d *WriteDrill) Restart() {
	d.session.Start()
	d.reset()
	d.score = 0
}

// Check grades input against the current word. Blank input is rejected and
// leaves the item unanswered.
func (d *WriteDrill) Check(input string) (bool, error) {
	if err := d.session.ready(); err != nil {
		return false, err
	}
	if d.state == Checked {
		return d.correct, ErrAlreadyChecked
	}
	if strings.TrimSpace(input) == "" {
		return false, ErrEmptyAnswer
	}

	word, _ := d.session.Current()
	d.input = input
	d.correct = Matches(input, word.GermanWord)
	d.state = Checked
	if d.correct {
		d.score++
	}
	return d.correct, nil
}

// Next moves to the following item once the current one is checked.
// Past the last item the session finishes.
func (d *WriteDrill) Next() error {
	if err := d.session.ready(); err != nil {
		return err
	}
	if d.state != Checked {
		return ErrNotChecked
	}
	if err := d.session.advance(false); err != nil {
		return err
	}
	d.reset()
	return nil
}

func (d *WriteDrill) reset() {
	d.state = Unanswered
	d.input = ""
	d.correct = false
}

// Prompt returns the current word
func (d *WriteDrill) Prompt() (domain.Word, bool) {
	return d.session.Current()
}

// State returns the per-item answer state
func (d *WriteDrill) State() AnswerState {
	return d.state
}

// Input returns the last checked answer
func (d *WriteDrill) Input() string {
	return d.input
}

// Correct reports the feedback of the last check
func (d *WriteDrill) Correct() bool {
	return d.correct
}

// Finished reports that the permutation has been walked
func (d *WriteDrill) Finished() bool {
	return d.session.Phase() == PhaseFinished
}

// Empty reports that there was nothing to practice
func (d *WriteDrill) Empty() bool {
	return d.session.Empty()
}

// Score returns the number of correct answers and the pool size
func (d *WriteDrill) Score() (int, int) {
	return d.score, d.session.Len()
}

// Progress returns the 1-based item number and the pool size
func (d *WriteDrill) Progress() (int, int) {
	return d.session.Index() + 1, d.session.Len()
}

// Session exposes the underlying walk
func (d *WriteDrill) Session() *Session[domain.Word] {
	return d.session
}

// Matches compares an answer with the target base form: surrounding whitespace,
// case and diacritics are ignored, nothing else is.
func Matches(answer, target string) bool {
	a := fold(answer)
	return a != "" && a == fold(target)
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		stripped = strings.TrimSpace(s)
	}
	return cases.Fold().String(stripped)
}
