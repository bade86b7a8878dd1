package handler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"wortschatz/internal/domain"
	"wortschatz/internal/exercise"
	"wortschatz/internal/pagination"
	"wortschatz/internal/service"

	tele "gopkg.in/telebot.v3"
)

// Callback uniques
const (
	cbView      = "view"
	cbPage      = "page"
	cbCategory  = "cat"
	cbSearch    = "search"
	cbWord      = "word"
	cbEdit      = "edit"
	cbDelete    = "del"
	cbDelYes    = "del_yes"
	cbDelNo     = "del_no"
	cbAdd       = "add"
	cbKind      = "kind"
	cbArtikel   = "art"
	cbToggleCat = "cat_t"
	cbSave      = "save"
	cbCancel    = "cancel"
	cbExercise  = "ex"
	cbFlash     = "fc"
	cbWrite     = "wr"
	cbNoop      = "noop"
)

const categoryButtonsPerRow = 3

// parseCallback splits "unique|payload" data when telebot did not route by unique
func parseCallback(unique, data string) (string, string) {
	if unique != "" {
		return unique, data
	}
	data = strings.TrimPrefix(data, "\f")
	if i := strings.IndexByte(data, '|'); i >= 0 {
		return data[:i], data[i+1:]
	}
	return data, ""
}

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("📚 Words", cbView, string(domain.ViewWords)),
			menu.Data("🧠 Exercises", cbView, string(domain.ViewExercises)),
		),
		menu.Row(
			menu.Data("➕ Add word", cbAdd),
			menu.Data("⚙️ Settings", cbView, string(domain.ViewSettings)),
		),
	)
	return menu
}

func backMarkup(view domain.View) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data("◀️ Back", cbView, string(view))))
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data("❌ Cancel", cbCancel)))
	return menu
}

// wordLine is the one-line summary of a word
func wordLine(w domain.Word) string {
	return fmt.Sprintf("%s: %s / %s", w.DisplayName(), w.EnglishTranslation, w.TurkishTranslation)
}

func homeText(recent []domain.Word, now time.Time) string {
	var b strings.Builder
	b.WriteString("🏠 Wortschatz\n\n")
	if len(recent) == 0 {
		b.WriteString("No words yet. Add your first one!")
		return b.String()
	}
	b.WriteString("Recently added:\n")
	for _, w := range recent {
		fmt.Fprintf(&b, "• %s (%s)\n", wordLine(w), domain.AddedLabel(w.CreatedAt, now))
	}
	return strings.TrimRight(b.String(), "\n")
}

func categoryName(categories []domain.Category, id *int) string {
	if id == nil {
		return "All"
	}
	for _, c := range categories {
		if c.ID == *id {
			return c.Name
		}
	}
	return "#" + strconv.Itoa(*id)
}

func wordsText(s service.WordListSnapshot) string {
	var b strings.Builder
	b.WriteString("📚 Words")
	if s.Controls.TotalPages > 0 {
		fmt.Fprintf(&b, " (page %d of %d, %d total)", s.Page.PageNumber, s.Controls.TotalPages, s.Page.TotalWords)
	}
	fmt.Fprintf(&b, "\nCategory: %s", categoryName(s.Categories, s.Page.SelectedCategory))
	if s.Page.SearchTerm != "" {
		fmt.Fprintf(&b, "\nSearch: %q", s.Page.SearchTerm)
	}
	b.WriteString("\n\n")

	switch {
	case s.Err != "":
		b.WriteString("⚠️ " + s.Err)
	case len(s.Visible) == 0 && s.Page.SearchTerm != "":
		b.WriteString("No words on this page match your search.")
	case len(s.Visible) == 0:
		b.WriteString("No words found.")
	default:
		b.WriteString("Tap a word for details. Send text to search this page.")
	}
	return b.String()
}

func wordsMarkup(s service.WordListSnapshot) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	if s.Err == "" {
		for _, w := range s.Visible {
			rows = append(rows, markup.Row(markup.Data(w.DisplayName(), cbWord, strconv.Itoa(w.ID))))
		}
	}

	if row := paginationRow(markup, s.Controls); len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, categoryRows(markup, s.Categories, s.Page.SelectedCategory)...)

	bottom := tele.Row{markup.Data("➕ Add", cbAdd)}
	if s.Page.SearchTerm != "" {
		bottom = append(bottom, markup.Data("✖️ Clear search", cbSearch, "clear"))
	}
	bottom = append(bottom, markup.Data("🏠 Home", cbView, string(domain.ViewHome)))
	rows = append(rows, bottom)

	markup.Inline(rows...)
	return markup
}

// paginationRow renders the presenter output; nothing when there is a single page
func paginationRow(markup *tele.ReplyMarkup, c pagination.Controls) tele.Row {
	if !c.Visible {
		return nil
	}

	row := tele.Row{}
	if prev, ok := c.Prev(); ok {
		row = append(row, markup.Data("◀️", cbPage, strconv.Itoa(prev)))
	} else {
		row = append(row, markup.Data("·", cbNoop))
	}
	for _, item := range c.Items {
		label := strconv.Itoa(item.Number)
		if item.Active {
			row = append(row, markup.Data("["+label+"]", cbNoop))
			continue
		}
		row = append(row, markup.Data(label, cbPage, label))
	}
	if next, ok := c.Next(); ok {
		row = append(row, markup.Data("▶️", cbPage, strconv.Itoa(next)))
	} else {
		row = append(row, markup.Data("·", cbNoop))
	}
	return row
}

func categoryRows(markup *tele.ReplyMarkup, categories []domain.Category, selected *int) []tele.Row {
	btns := []tele.Btn{markup.Data(checked("All", selected == nil), cbCategory, "all")}
	for _, c := range categories {
		active := selected != nil && *selected == c.ID
		btns = append(btns, markup.Data(checked(c.Name, active), cbCategory, strconv.Itoa(c.ID)))
	}
	return chunk(markup, btns, categoryButtonsPerRow)
}

func checked(label string, on bool) string {
	if on {
		return "✅ " + label
	}
	return label
}

func chunk(markup *tele.ReplyMarkup, btns []tele.Btn, size int) []tele.Row {
	rows := []tele.Row{}
	for start := 0; start < len(btns); start += size {
		end := start + size
		if end > len(btns) {
			end = len(btns)
		}
		rows = append(rows, markup.Row(btns[start:end]...))
	}
	return rows
}

func wordDetailText(w domain.Word, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 %s\n\n", w.DisplayName())
	fmt.Fprintf(&b, "🇬🇧 %s\n🇹🇷 %s\n", w.EnglishTranslation, w.TurkishTranslation)

	g := w.Grammar()
	switch g.Kind {
	case domain.KindNoun:
		if g.Plural != "" {
			fmt.Fprintf(&b, "\nPlural: %s\n", g.Plural)
		}
	case domain.KindVerb:
		b.WriteString(conjugationText(g.Conjugations))
	}

	if w.BasicSentence != nil && *w.BasicSentence != "" {
		fmt.Fprintf(&b, "\nBasic: %s\n", *w.BasicSentence)
	}
	if w.AdvancedSentence != nil && *w.AdvancedSentence != "" {
		fmt.Fprintf(&b, "Advanced: %s\n", *w.AdvancedSentence)
	}
	if w.Note != nil && *w.Note != "" {
		fmt.Fprintf(&b, "\nNote: %s\n", *w.Note)
	}
	if w.ImageURL != nil && *w.ImageURL != "" {
		fmt.Fprintf(&b, "\nImage: %s\n", *w.ImageURL)
	}
	if len(w.Categories) > 0 {
		names := make([]string, 0, len(w.Categories))
		for _, c := range w.Categories {
			names = append(names, c.Name)
		}
		fmt.Fprintf(&b, "\nCategories: %s\n", strings.Join(names, ", "))
	}
	if !w.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Added %s", domain.AddedLabel(w.CreatedAt, now))
	}
	return strings.TrimRight(b.String(), "\n")
}

// conjugationText lists präsens in pronoun order, then any other tense alphabetically
func conjugationText(conj domain.Conjugations) string {
	var b strings.Builder
	if present, ok := conj[domain.PresentTense]; ok {
		fmt.Fprintf(&b, "\n%s:\n", domain.PresentTense)
		for _, p := range domain.Pronouns {
			if form, ok := present[p]; ok {
				fmt.Fprintf(&b, "  %s %s\n", p, form)
			}
		}
	}

	tenses := make([]string, 0, len(conj))
	for t := range conj {
		if t != domain.PresentTense {
			tenses = append(tenses, t)
		}
	}
	sort.Strings(tenses)
	for _, t := range tenses {
		fmt.Fprintf(&b, "\n%s:\n", t)
		pronouns := make([]string, 0, len(conj[t]))
		for p := range conj[t] {
			pronouns = append(pronouns, p)
		}
		sort.Strings(pronouns)
		for _, p := range pronouns {
			fmt.Fprintf(&b, "  %s %s\n", p, conj[t][p])
		}
	}
	return b.String()
}

func wordDetailMarkup(w domain.Word) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	id := strconv.Itoa(w.ID)
	markup.Inline(
		markup.Row(
			markup.Data("✏️ Edit", cbEdit, id),
			markup.Data("🗑 Delete", cbDelete, id),
		),
		markup.Row(markup.Data("◀️ Back", cbView, string(domain.ViewWords))),
	)
	return markup
}

func deleteConfirmMarkup(id int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Yes, delete", cbDelYes, strconv.Itoa(id)),
		markup.Data("Cancel", cbDelNo, strconv.Itoa(id)),
	))
	return markup
}

func exercisesText(pool int) string {
	if pool == 0 {
		return "🧠 Exercises\n\nThere are no words on the current page to practice."
	}
	return fmt.Sprintf("🧠 Exercises\n\nPractice the %d words currently shown in the word list.", pool)
}

func exercisesMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("🃏 Flashcards", cbExercise, "flash"),
			markup.Data("✍️ Write the word", cbExercise, "write"),
		),
		markup.Row(markup.Data("🏠 Home", cbView, string(domain.ViewHome))),
	)
	return markup
}

func flashcardText(f *exercise.Flashcards) string {
	if f.Empty() {
		return "🃏 Flashcards\n\nNo words to practice."
	}
	w, _ := f.Card()
	n, total := f.Progress()
	if f.Side() == exercise.Front {
		return fmt.Sprintf("🃏 Card %d of %d\n\n%s", n, total, w.DisplayName())
	}
	return fmt.Sprintf("🃏 Card %d of %d\n\n%s\n\n🇬🇧 %s\n🇹🇷 %s", n, total, w.DisplayName(), w.EnglishTranslation, w.TurkishTranslation)
}

func flashcardMarkup(f *exercise.Flashcards) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	closeBtn := markup.Data("✖️ Close", cbExercise, "close")
	if f.Empty() {
		markup.Inline(markup.Row(closeBtn))
		return markup
	}
	markup.Inline(
		markup.Row(markup.Data("🔄 Flip", cbFlash, "flip"), markup.Data("➡️ Next", cbFlash, "next")),
		markup.Row(markup.Data("🔀 Restart", cbFlash, "restart"), closeBtn),
	)
	return markup
}

func writeText(d *exercise.WriteDrill) string {
	if d.Empty() {
		return "✍️ Write the word\n\nNo words to practice."
	}
	if d.Finished() {
		score, total := d.Score()
		return fmt.Sprintf("✍️ Finished!\n\nYou got %d of %d right.", score, total)
	}

	w, _ := d.Prompt()
	n, total := d.Progress()
	text := fmt.Sprintf("✍️ Word %d of %d\n\n🇬🇧 %s\n🇹🇷 %s\n\n", n, total, w.EnglishTranslation, w.TurkishTranslation)
	if d.State() == exercise.Unanswered {
		return text + "Send the German word."
	}
	if d.Correct() {
		return text + fmt.Sprintf("✅ Correct: %s", w.DisplayName())
	}
	return text + fmt.Sprintf("❌ You wrote %q. The answer is %s.", d.Input(), w.DisplayName())
}

func writeMarkup(d *exercise.WriteDrill) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	closeBtn := markup.Data("✖️ Close", cbExercise, "close")
	switch {
	case d.Empty():
		markup.Inline(markup.Row(closeBtn))
	case d.Finished():
		markup.Inline(markup.Row(markup.Data("🔀 Restart", cbWrite, "restart"), closeBtn))
	case d.State() == exercise.Checked:
		markup.Inline(markup.Row(markup.Data("➡️ Next", cbWrite, "next"), closeBtn))
	default:
		markup.Inline(markup.Row(closeBtn))
	}
	return markup
}

func kindMarkup(current domain.Kind) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data(checked("Other", current == domain.KindOther), cbKind, string(domain.KindOther)),
			markup.Data(checked("Noun", current == domain.KindNoun), cbKind, string(domain.KindNoun)),
			markup.Data(checked("Verb", current == domain.KindVerb), cbKind, string(domain.KindVerb)),
		),
		markup.Row(markup.Data("❌ Cancel", cbCancel)),
	)
	return markup
}

func artikelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	row := tele.Row{}
	for _, a := range domain.Artikels {
		row = append(row, markup.Data(string(a), cbArtikel, string(a)))
	}
	markup.Inline(row, markup.Row(markup.Data("❌ Cancel", cbCancel)))
	return markup
}

func draftText(d service.WordDraft, editing bool) string {
	var b strings.Builder
	if editing {
		b.WriteString("✏️ Edit word\n\n")
	} else {
		b.WriteString("➕ New word\n\n")
	}
	fmt.Fprintf(&b, "Type: %s\n", d.Kind)
	name := d.GermanWord
	if d.Kind == domain.KindNoun && d.Artikel != "" {
		name = d.Artikel + " " + name
	}
	fmt.Fprintf(&b, "German: %s\nEnglish: %s\nTurkish: %s\n", name, d.EnglishTranslation, d.TurkishTranslation)
	if d.Kind == domain.KindNoun && d.PluralForm != "" {
		fmt.Fprintf(&b, "Plural: %s\n", d.PluralForm)
	}
	if d.Kind == domain.KindVerb && (d.ConjugationsJSON != "" || len(d.Present) > 0) {
		b.WriteString("Conjugations: provided\n")
	}
	b.WriteString("\nPick categories, then save.")
	return b.String()
}

func draftMarkup(d service.WordDraft, categories []domain.Category) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	selected := make(map[int]bool, len(d.CategoryIDs))
	for _, id := range d.CategoryIDs {
		selected[id] = true
	}

	btns := make([]tele.Btn, 0, len(categories))
	for _, c := range categories {
		btns = append(btns, markup.Data(checked(c.Name, selected[c.ID]), cbToggleCat, strconv.Itoa(c.ID)))
	}
	rows := chunk(markup, btns, categoryButtonsPerRow)
	rows = append(rows, markup.Row(markup.Data("💾 Save", cbSave), markup.Data("❌ Cancel", cbCancel)))
	markup.Inline(rows...)
	return markup
}

func statsText(s *service.Stats) string {
	var b strings.Builder
	b.WriteString("⚙️ Settings\n\n")
	fmt.Fprintf(&b, "Words in the store: %d\n", s.TotalWords)
	if len(s.Categories) > 0 {
		b.WriteString("\nBy category:\n")
		for _, c := range s.Categories {
			fmt.Fprintf(&b, "• %s: %d\n", c.Category.Name, c.Words)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// toggleID adds id to ids or removes it when present
func toggleID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
