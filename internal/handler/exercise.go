package handler

import (
	"errors"

	"wortschatz/internal/domain"
	"wortschatz/internal/exercise"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleExercise opens or closes an exercise over the words currently shown
func (h *Handler) handleExercise(c tele.Context, cs *chatSession, payload string) error {
	if payload == "close" {
		cs.resetFlow()
		return h.showView(c, cs, domain.ViewExercises)
	}

	pool := cs.list.Visible()
	rng := exercise.NewRand(h.opts.ShuffleSeed)

	cs.resetFlow()
	cs.mu.Lock()
	var text string
	var markup *tele.ReplyMarkup
	switch payload {
	case "flash":
		cs.flash = exercise.NewFlashcards(pool, rng)
		text, markup = flashcardText(cs.flash), flashcardMarkup(cs.flash)
	case "write":
		cs.write = exercise.NewWriteDrill(pool, rng)
		if !cs.write.Empty() {
			cs.state = domain.StateWaitingAnswer
		}
		text, markup = writeText(cs.write), writeMarkup(cs.write)
	default:
		cs.mu.Unlock()
		return c.Respond()
	}
	cs.mu.Unlock()

	h.logger.Info("Exercise started",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("exercise", payload),
		zap.Int("words", len(pool)),
	)
	return h.show(c, text, markup)
}

// handleFlashcard flips, advances or restarts the open deck
func (h *Handler) handleFlashcard(c tele.Context, cs *chatSession, payload string) error {
	cs.mu.Lock()
	f := cs.flash
	if f == nil {
		cs.mu.Unlock()
		return h.notify(c, "No flashcards are open.", false)
	}

	var err error
	switch payload {
	case "flip":
		err = f.Flip()
	case "next":
		err = f.Next()
	case "restart":
		f.Restart()
	}
	text, markup := flashcardText(f), flashcardMarkup(f)
	cs.mu.Unlock()

	if err != nil {
		return h.notify(c, exerciseErrorText(err), false)
	}
	return h.show(c, text, markup)
}

// handleWriteAction advances or restarts the write drill
func (h *Handler) handleWriteAction(c tele.Context, cs *chatSession, payload string) error {
	cs.mu.Lock()
	d := cs.write
	if d == nil {
		cs.mu.Unlock()
		return h.notify(c, "No exercise is open.", false)
	}

	var err error
	switch payload {
	case "next":
		err = d.Next()
	case "restart":
		d.Restart()
	}
	if d.Finished() || d.Empty() {
		cs.state = domain.StateIdle
	} else {
		cs.state = domain.StateWaitingAnswer
	}
	text, markup := writeText(d), writeMarkup(d)
	cs.mu.Unlock()

	if err != nil {
		return h.notify(c, exerciseErrorText(err), false)
	}
	return h.show(c, text, markup)
}

// handleAnswer checks a typed answer against the current prompt
func (h *Handler) handleAnswer(c tele.Context, cs *chatSession, text string) error {
	cs.mu.Lock()
	d := cs.write
	if d == nil {
		cs.state = domain.StateIdle
		cs.mu.Unlock()
		return c.Send("No exercise is open.")
	}

	_, err := d.Check(text)
	body, markup := writeText(d), writeMarkup(d)
	cs.mu.Unlock()

	if err != nil {
		return c.Send(exerciseErrorText(err))
	}
	return c.Send(body, markup)
}

func exerciseErrorText(err error) string {
	switch {
	case errors.Is(err, exercise.ErrNoItems):
		return "There are no words to practice."
	case errors.Is(err, exercise.ErrFinished):
		return "The exercise is finished. Restart to go again."
	case errors.Is(err, exercise.ErrNotChecked):
		return "Send your answer first."
	case errors.Is(err, exercise.ErrAlreadyChecked):
		return "Already checked. Tap Next to continue."
	case errors.Is(err, exercise.ErrEmptyAnswer):
		return "Send the German word."
	}
	return err.Error()
}
