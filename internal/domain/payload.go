package domain

import (
	"encoding/json"
)

// WordPayload is the body of a create or update request.
// Optional fields left nil are omitted; fields named in Cleared are sent as null.
type WordPayload struct {
	GermanWord         string       `json:"german_word" validate:"required,max=100"`
	EnglishTranslation string       `json:"english_translation" validate:"required,max=100"`
	TurkishTranslation string       `json:"turkish_translation" validate:"required,max=100"`
	Artikel            *Artikel     `json:"artikel" validate:"omitempty,oneof=der die das"`
	PluralForm         *string      `json:"plural_form" validate:"omitempty,max=100"`
	Conjugations       Conjugations `json:"conjugations" validate:"omitempty,dive,keys,required,endkeys"`
	BasicSentence      *string      `json:"basic_sentence"`
	AdvancedSentence   *string      `json:"advanced_sentence"`
	Note               *string      `json:"note"`
	ImageURL           *string      `json:"image_url" validate:"omitempty,max=255"`
	CategoryIDs        []int        `json:"category_ids"`

	Cleared []string `json:"-"`
}

// Clear marks a field (by its json name) to be sent as null
func (p *WordPayload) Clear(field string) {
	for _, f := range p.Cleared {
		if f == field {
			return
		}
	}
	p.Cleared = append(p.Cleared, field)
}

// MarshalJSON omits absent optional fields and writes explicit nulls for cleared ones
func (p WordPayload) MarshalJSON() ([]byte, error) {
	body := map[string]any{
		"german_word":         p.GermanWord,
		"english_translation": p.EnglishTranslation,
		"turkish_translation": p.TurkishTranslation,
	}
	if p.Artikel != nil {
		body["artikel"] = *p.Artikel
	}
	setString(body, "plural_form", p.PluralForm)
	setString(body, "basic_sentence", p.BasicSentence)
	setString(body, "advanced_sentence", p.AdvancedSentence)
	setString(body, "note", p.Note)
	setString(body, "image_url", p.ImageURL)
	if len(p.Conjugations) > 0 {
		body["conjugations"] = p.Conjugations
	}
	if p.CategoryIDs != nil {
		body["category_ids"] = p.CategoryIDs
	}
	for _, f := range p.Cleared {
		body[f] = nil
	}
	return json.Marshal(body)
}

func setString(body map[string]any, key string, v *string) {
	if v != nil {
		body[key] = *v
	}
}

// CategoryPayload is the body of a create-category request
type CategoryPayload struct {
	Name string `json:"name" validate:"required,max=50"`
}
