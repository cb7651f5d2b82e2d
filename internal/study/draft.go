package study

import (
	"strings"

	"github.com/dtroode/quizzme-server/internal/model"
)

// Mode selects which card list a Draft saves.
type Mode int

const (
	ModeGenerated Mode = iota
	ModeManual
)

// Side names a face of a card.
type Side int

const (
	SideFront Side = iota
	SideBack
)

// Draft is the state of the deck composer.
type Draft struct {
	Mode       Mode
	Manual     []model.Card
	Generated  []model.Card
	Generating bool
}

// NewDraft starts in generated mode with one blank manual card.
func NewDraft() Draft {
	return Draft{Manual: []model.Card{{}}}
}

func (d Draft) AddCard() Draft {
	d.Manual = append(cloneCards(d.Manual), model.Card{})
	return d
}

// RemoveCard drops manual card i. Out of range indexes are ignored.
func (d Draft) RemoveCard(i int) Draft {
	if i < 0 || i >= len(d.Manual) {
		return d
	}
	manual := make([]model.Card, 0, len(d.Manual)-1)
	manual = append(manual, d.Manual[:i]...)
	d.Manual = append(manual, d.Manual[i+1:]...)
	return d
}

func (d Draft) UpdateCard(i int, side Side, value string) Draft {
	if i < 0 || i >= len(d.Manual) {
		return d
	}
	d.Manual = cloneCards(d.Manual)
	if side == SideBack {
		d.Manual[i].Back = value
	} else {
		d.Manual[i].Front = value
	}
	return d
}

func (d Draft) ToggleMode() Draft {
	if d.Mode == ModeGenerated {
		d.Mode = ModeManual
	} else {
		d.Mode = ModeGenerated
	}
	return d
}

// BeginGeneration disables input until the generator answers.
func (d Draft) BeginGeneration() Draft {
	d.Generating = true
	return d
}

func (d Draft) CompleteGeneration(cards []model.Card) Draft {
	d.Generating = false
	d.Generated = cloneCards(cards)
	return d
}

// FailGeneration re-enables input and keeps the previous generated cards.
func (d Draft) FailGeneration() Draft {
	d.Generating = false
	return d
}

// CardsToSave returns the cards of the active mode. Manual cards with both
// sides blank are skipped.
func (d Draft) CardsToSave() []model.Card {
	if d.Mode == ModeGenerated {
		return cloneCards(d.Generated)
	}
	out := make([]model.Card, 0, len(d.Manual))
	for _, c := range d.Manual {
		if strings.TrimSpace(c.Front) == "" && strings.TrimSpace(c.Back) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ParseCardLines reads one card per line as "front|back". The first
// unescaped '|' separates the sides; `\|`, `\\`, `\n` and `\r` decode to
// the literal characters. Lines without a separator become a front with an
// empty back. Blank lines are skipped and surrounding whitespace is dropped.
func ParseCardLines(text string) []model.Card {
	cards := []model.Card{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		front, back := splitCardLine(line)
		cards = append(cards, model.Card{
			Front: unescapeCardField(strings.TrimSpace(front)),
			Back:  unescapeCardField(strings.TrimSpace(back)),
		})
	}
	return cards
}

// FormatCardLines writes cards in the form ParseCardLines reads, escaping
// separators and line breaks inside the text.
func FormatCardLines(cards []model.Card) string {
	var b strings.Builder
	for i, c := range cards {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(cardFieldEscaper.Replace(c.Front))
		b.WriteByte('|')
		b.WriteString(cardFieldEscaper.Replace(c.Back))
	}
	return b.String()
}

var cardFieldEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`, "\n", `\n`, "\r", `\r`)

func splitCardLine(line string) (string, string) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '|':
			return line[:i], line[i+1:]
		}
	}
	return line, ""
}

func unescapeCardField(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '|', '\\':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func cloneCards(cards []model.Card) []model.Card {
	if cards == nil {
		return nil
	}
	return append(make([]model.Card, 0, len(cards)), cards...)
}
