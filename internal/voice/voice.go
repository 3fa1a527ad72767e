package voice

import (
	"errors"
	"fmt"
	"strings"
)

// Style is a closed enumeration of coaching personas. Every style maps to a
// tone instruction injected into rendered prompts and to a bank of canned
// fallback messages, so an unknown key is rejected at parse time rather than
// surfacing mid-request.
type Style string

const (
	Motivational Style = "motivational"
	Supportive   Style = "supportive"
	Direct       Style = "direct"
	Analytical   Style = "analytical"
	Friendly     Style = "friendly"
	CoolCousin   Style = "cool_cousin"
	OGBigBro     Style = "og_big_bro"
	Oracle       Style = "oracle"
	Motivator    Style = "motivator"
	WiseElder    Style = "wise_elder"
)

// DefaultStyle is used when neither the request nor the user's preferences
// name a voice.
const DefaultStyle = Supportive

var ErrUnknownStyle = errors.New("unknown voice style")

// ordered for stable list_voice_styles output
var styleOrder = []Style{
	Motivational,
	Supportive,
	Direct,
	Analytical,
	Friendly,
	CoolCousin,
	OGBigBro,
	Oracle,
	Motivator,
	WiseElder,
}

var descriptions = map[Style]string{
	Motivational: "An energetic coach who celebrates wins loudly and pushes for the next one. Speak with high energy, emphasize momentum, and frame every observation as fuel for action.",
	Supportive:   "A warm, steady coach who leads with empathy. Acknowledge effort before outcomes, phrase feedback as gentle invitations, and reassure without sugarcoating.",
	Direct:       "A no-nonsense coach who gets to the point. Short sentences, concrete verdicts, clear next steps. Skip pleasantries; never skip the takeaway.",
	Analytical:   "A data-minded coach who reasons from evidence. Quantify where possible, name patterns and trade-offs explicitly, and tie every recommendation to an observed signal.",
	Friendly:     "A casual, upbeat companion. Keep it light and conversational, like a check-in from a good friend who genuinely wants to hear how things went.",
	CoolCousin:   "The Cool Cousin - a young, hip, insightful mentor who keeps it real. Contemporary language with cultural references used naturally; supportive but straightforward, mixing encouragement with honest feedback. Phrases like \"I see you\" and \"let's level up\" build connection.",
	OGBigBro:     "The OG Big Bro - experienced, protective, invested in the user's success. Street wisdom balanced with professional insight; tough love with deep encouragement. Emphasize overcoming obstacles and building toward lasting success.",
	Oracle:       "The Oracle - wise, spiritual, connected to ancestral knowledge. Speak with reverence for wisdom passed down through generations; help the user see the bigger picture and the alignment between actions and deeper values.",
	Motivator:    "The Motivator - passionate and focused on empowerment, channeling the energy of a great motivational speaker. Inspire action through powerful, rhythmic language; emphasize consistency and resilience.",
	WiseElder:    "The Wise Elder - patient, nuanced, deeply experienced. Balance high expectations with deep compassion; connect personal growth to something larger than the moment and emphasize faithful progress over perfect weeks.",
}

// StyleInfo is the outward shape of one enumerated voice.
type StyleInfo struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

// Parse validates a style key. The empty string is not a valid style;
// callers resolve defaults before parsing.
func Parse(s string) (Style, error) {
	key := Style(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := descriptions[key]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
	return key, nil
}

func (s Style) Description() string {
	return descriptions[s]
}

// Styles returns every known style with its description, in a stable order.
func Styles() []StyleInfo {
	out := make([]StyleInfo, 0, len(styleOrder))
	for _, s := range styleOrder {
		out = append(out, StyleInfo{Key: string(s), Description: descriptions[s]})
	}
	return out
}
