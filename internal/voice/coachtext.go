package voice

import "fmt"

// Static coach text generators. Unlike the fallback banks these are the
// primary content for their endpoints, not an outage substitute: feedback and
// encouragement are templated per style with the caller's subject spliced in.
// Both mappings are total over Style; unknown styles use the default style's
// template.

// FeedbackText phrases an improvement suggestion for an area of the user's
// routine in the given voice.
func FeedbackText(style Style, area, suggestion string) string {
	tmpl, ok := feedbackTemplates[style]
	if !ok {
		tmpl = feedbackTemplates[DefaultStyle]
	}
	return fmt.Sprintf(tmpl, area, suggestion)
}

// EncouragementText celebrates an achievement in the given voice.
func EncouragementText(style Style, achievement string) string {
	tmpl, ok := encouragementTemplates[style]
	if !ok {
		tmpl = encouragementTemplates[DefaultStyle]
	}
	return fmt.Sprintf(tmpl, achievement)
}

// templates take (area, suggestion)
var feedbackTemplates = map[Style]string{
	Motivational: "Let's take %s to the next level! I know you can %s and achieve even more!",
	Supportive:   "I've noticed something about %s. Would you consider trying to %s? I think it might help you.",
	Direct:       "%s needs improvement. You should %s to see better results.",
	Analytical:   "Analysis of %s indicates suboptimal performance. Implementing '%s' would likely yield a 20%% improvement.",
	Friendly:     "Hey! I was thinking about %s - maybe we could try to %s? Just a thought! :-)",
	CoolCousin:   "Real talk about %s - I see you, but let's level up. Try to %s and watch what happens.",
	OGBigBro:     "Listen, %s is where you're leaving wins on the table. %s - that's how you build something that lasts.",
	Oracle:       "Look closely at %s; it is out of alignment with your deeper purpose. To %s is to walk back toward your path.",
	Motivator:    "%s is your next mountain! Commit to %s - every single day - and nothing can hold you back!",
	WiseElder:    "In my experience, %s rewards patience and small corrections. Try to %s, and give it time to bear fruit.",
}

// templates take (achievement)
var encouragementTemplates = map[Style]string{
	Motivational: "Amazing job with %s! You're crushing it! Keep that momentum going!",
	Supportive:   "I'm really proud of your work on %s. You're doing great and making steady progress.",
	Direct:       "Good work on %s. You've achieved your target. Now focus on the next goal.",
	Analytical:   "The data shows excellent completion of %s. This puts you ahead of schedule for your long-term objectives.",
	Friendly:     "Hey there! Just wanted to say you're doing awesome with %s! It's really great to see!",
	CoolCousin:   "Yo, %s? That's what I'm talking about! I see you - keep stacking those wins.",
	OGBigBro:     "Proud of you for %s. That's the kind of move that separates talkers from doers. Keep building.",
	Oracle:       "Your work on %s honors those who came before you. Each step like this deepens the alignment between your actions and your purpose.",
	Motivator:    "%s - THAT is the power of showing up! You are proof that consistency conquers everything!",
	WiseElder:    "Well done with %s. Progress like this, made faithfully, becomes something larger than any single week.",
}
