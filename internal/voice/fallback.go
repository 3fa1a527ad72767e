package voice

import (
	"fmt"
	"math/rand"
)

// UseCase names the situation a canned message stands in for when the model
// provider is unavailable.
type UseCase string

const (
	UseAnalysis      UseCase = "analysis"
	UseSuggestion    UseCase = "suggestion"
	UseFeedback      UseCase = "feedback"
	UseEncouragement UseCase = "encouragement"
	UseWeeklyReview  UseCase = "weekly_review"
	UseActionPlan    UseCase = "action_plan"
	UseGeneral       UseCase = "general"
)

var useCaseOrder = []UseCase{
	UseAnalysis,
	UseSuggestion,
	UseFeedback,
	UseEncouragement,
	UseWeeklyReview,
	UseActionPlan,
	UseGeneral,
}

// UseCases returns every known use case in a stable order.
func UseCases() []UseCase {
	out := make([]UseCase, len(useCaseOrder))
	copy(out, useCaseOrder)
	return out
}

// FallbackMessage returns a canned, style-matched message for the use case.
// The mapping is total over (Style, UseCase); unknown styles fall back to the
// default style and unknown use cases to the general bank, so this never
// returns an empty string.
func FallbackMessage(style Style, useCase UseCase) string {
	bank, ok := fallbackMessages[style]
	if !ok {
		bank = fallbackMessages[DefaultStyle]
	}
	msgs, ok := bank[useCase]
	if !ok || len(msgs) == 0 {
		msgs = bank[UseGeneral]
	}
	return msgs[rand.Intn(len(msgs))]
}

// FallbackMessageWithContext prefixes the canned message with the subject it
// refers to, e.g. the title of the event that was being analyzed.
func FallbackMessageWithContext(style Style, useCase UseCase, subject string) string {
	msg := FallbackMessage(style, useCase)
	if subject == "" {
		return msg
	}
	return fmt.Sprintf("Regarding '%s': %s", subject, msg)
}

var fallbackMessages = map[Style]map[UseCase][]string{
	Motivational: {
		UseAnalysis: {
			"Can't run the full analysis right now, but what I can see says you're putting in real work. Keep that fire going!",
			"The system's taking a breather, but your momentum isn't! From here your schedule looks strong.",
		},
		UseSuggestion: {
			"Can't pull custom advice at the moment, but you already know the move: attack the most important thing first!",
			"No personalized tips right now, but don't wait on technology - take one bold step toward your goal today!",
		},
		UseFeedback: {
			"Feedback engine's down, but here's what never changes: show up, push hard, adjust fast!",
			"Can't generate detailed feedback right now, but keep swinging - effort compounds!",
		},
		UseEncouragement: {
			"You're crushing it! No system outage can take that away from you!",
			"Keep that energy up! You've got everything you need to win today!",
		},
		UseWeeklyReview: {
			"Can't pull your full week right now, but I know you've been showing up! Finish strong!",
			"Review's offline, but your commitment this week speaks for itself!",
		},
		UseActionPlan: {
			"Can't build your custom plan right now, but nothing stops you from hitting your top priority today!",
			"Plan generator's down - your determination isn't. Pick the biggest rock and move it!",
		},
		UseGeneral: {
			"We've hit a temporary roadblock, but nothing stops our momentum! Back up soon!",
			"Technical timeout! Challenges are just setups for comebacks!",
		},
	},
	Supportive: {
		UseAnalysis: {
			"I can't run the full analysis right now, but from what I can see you're making steady, meaningful progress.",
			"The analysis isn't available at the moment - please don't let that discourage you. Showing up is what matters.",
		},
		UseSuggestion: {
			"I can't offer personalized advice right now, but a gentle reminder: protect time for the things that matter most to you.",
			"No custom suggestions at the moment. Be kind to yourself and keep taking small, steady steps.",
		},
		UseFeedback: {
			"I can't prepare detailed feedback right now, but I've seen your consistency and it's genuinely encouraging.",
			"Feedback is unavailable at the moment. What I can say is that your effort is noticed and it counts.",
		},
		UseEncouragement: {
			"I'm really proud of the work you're putting in. Keep going at your own pace.",
			"You're doing better than you think. Steady progress adds up.",
		},
		UseWeeklyReview: {
			"I can't pull together your full week right now, but what I can see shows real care in how you spend your time.",
			"The weekly review is unavailable, but don't worry - focus on finishing the week in a way you feel good about.",
		},
		UseActionPlan: {
			"I can't create your plan right now. Until it's back, focus gently on your top priority - progress over perfection.",
			"The planner is unavailable at the moment. One small step today is still a step.",
		},
		UseGeneral: {
			"It looks like our connection is having trouble. Let's try again in a little while.",
			"Something's not working on our end right now. These things happen - we'll sort it out.",
		},
	},
	Direct: {
		UseAnalysis: {
			"Analysis unavailable. Current signal: your schedule is active. Continue executing.",
			"Can't score this event right now. Default guidance: keep time spent aligned with stated goals.",
		},
		UseSuggestion: {
			"No custom suggestion available. Standing advice: cut the lowest-value block from tomorrow.",
			"Suggestion engine down. Do the most important task first. No exceptions.",
		},
		UseFeedback: {
			"Feedback unavailable. Review your own numbers: completed vs. planned. Act on the gap.",
			"Can't generate feedback now. Keep output consistent; revisit when the system is back.",
		},
		UseEncouragement: {
			"Good work. Target met. Move to the next goal.",
			"You're on track. Maintain the pace.",
		},
		UseWeeklyReview: {
			"Weekly review unavailable. Summary from partial data: consistent activity. Continue.",
			"Can't compile the full week. Do your own five-minute review: wins, misses, one fix.",
		},
		UseActionPlan: {
			"Plan generation down. Default plan: one priority task, one maintenance task, one review block.",
			"No custom plan available. Execute yesterday's plan again - consistency beats novelty.",
		},
		UseGeneral: {
			"Service interruption. Retry later.",
			"System's down. Nothing for you to fix. Check back shortly.",
		},
	},
	Analytical: {
		UseAnalysis: {
			"The analysis pipeline is unavailable, so no alignment score can be computed. Historical data suggests your scheduling pattern remains consistent with your goals.",
			"Insufficient service availability for a full analysis. Based on prior records, no corrective action is indicated at this time.",
		},
		UseSuggestion: {
			"No model-backed suggestion is available. Baseline heuristic: reallocate your least productive hour to your highest-priority goal.",
			"Suggestion service offline. Standing recommendation: batch similar tasks to reduce context-switching overhead.",
		},
		UseFeedback: {
			"Feedback generation failed upstream. Self-assessment prompt: compare planned versus actual time allocation this week and note the largest variance.",
			"Cannot compute detailed feedback. Observed trend from prior data remains positive.",
		},
		UseEncouragement: {
			"The data shows consistent execution on your part. That is the strongest predictor of long-term goal attainment.",
			"Your completion metrics have been trending upward. Sustaining the current pattern is sufficient.",
		},
		UseWeeklyReview: {
			"Weekly aggregation is unavailable. Partial signals indicate activity levels within your normal range.",
			"Cannot compile the full weekly dataset. Recommend a manual review of your three largest time blocks.",
		},
		UseActionPlan: {
			"Plan synthesis is offline. Default allocation: 60% top goal, 30% maintenance, 10% review.",
			"No generated plan available. Reuse the most recent plan; week-over-week plan drift is typically small.",
		},
		UseGeneral: {
			"The service is experiencing an outage. No data has been lost.",
			"Temporary system failure. Your records remain intact; retry shortly.",
		},
	},
	Friendly: {
		UseAnalysis: {
			"Hey! I can't run the full analysis right now, but honestly? From what I can see, you're doing great.",
			"The analysis thing is being glitchy - don't sweat it! Your schedule looks solid to me.",
		},
		UseSuggestion: {
			"Can't grab personalized tips right now, but hey - maybe just make a little extra time for the stuff you love?",
			"No custom advice at the moment! My two cents: keep it simple and do the important thing first.",
		},
		UseFeedback: {
			"Feedback's offline right now, but from where I'm sitting you've been doing really well!",
			"Can't pull detailed feedback - but hey, you showed up again today and that's what counts!",
		},
		UseEncouragement: {
			"You're doing awesome! Seriously, it's great to see!",
			"Look at you go! Keep it up, friend!",
		},
		UseWeeklyReview: {
			"Can't pull your whole week right now, but it looks like you've been busy in a good way!",
			"Weekly review's being moody - no worries! Let's just finish the week on a high note.",
		},
		UseActionPlan: {
			"The planner's napping right now! Maybe jot down your top three for tomorrow the old-fashioned way?",
			"Can't make your custom plan - but hey, you know what matters most. Start there!",
		},
		UseGeneral: {
			"Oops, something's acting up on our end! Give it a minute and we'll be back.",
			"Hey, small hiccup with the connection! Nothing to worry about.",
		},
	},
	CoolCousin: {
		UseAnalysis: {
			"I can't analyze this right now, but from what I see, you're putting in good work. Keep it up!",
			"System's tripping right now, but don't let that stop you. Your schedule is looking solid.",
			"Can't run the full analysis at the moment, but I see you showing up for yourself. That's what matters.",
		},
		UseSuggestion: {
			"Can't connect to get personalized advice right now, but remember to stay consistent with your goals.",
			"Network's acting up, but one thing I always say: protect your time like it's valuable, because it is.",
		},
		UseFeedback: {
			"Can't break down the details right now, but real talk - you've been handling your business.",
			"Feedback's on pause, but I see the effort. Let's level up when the system's back.",
		},
		UseEncouragement: {
			"I see you! Keep stacking those wins.",
			"You're moving different lately - in a good way. Keep going.",
		},
		UseWeeklyReview: {
			"Can't pull your full weekly review right now, but I see you putting in work. Keep that momentum!",
			"System's not cooperating for a full review, but from what I can see, you've been showing up this week.",
		},
		UseActionPlan: {
			"Can't create your custom plan right now, but keep focusing on your top priorities.",
			"System's down for the detailed plan, but remember: progress over perfection.",
		},
		UseGeneral: {
			"Hey, looks like our connection's acting up. Let's try again in a bit.",
			"My bad, I'm having a moment. Can we circle back?",
		},
	},
	OGBigBro: {
		UseAnalysis: {
			"Can't break down the full analysis right now, but I see you putting in that work. Keep building.",
			"System's down, but I've been watching your progress. You're on the right path, trust me on that.",
		},
		UseSuggestion: {
			"Network's down for specific advice, but remember what I always say - discipline beats motivation every time.",
			"System's acting up, but here's some OG advice: protect your peace and your time.",
		},
		UseFeedback: {
			"Can't run the numbers right now, but let me put you up on game: consistency is what separates the real from the fake.",
			"Feedback's offline. Doesn't change the fundamentals - stay focused on the long-term vision.",
		},
		UseEncouragement: {
			"I'm proud of you. For real. Keep building that legacy.",
			"You've been handling business. That's how it's done.",
		},
		UseWeeklyReview: {
			"Can't pull your full stats this week, but I know you've been handling business.",
			"Technical difficulties with your review, but don't sweat it. Keep your eyes on the prize.",
		},
		UseActionPlan: {
			"Can't get you that custom plan right now, but remember: strategic planning beats random hustle.",
			"Technical issue with the planning system, but trust your instincts on what needs to get done.",
		},
		UseGeneral: {
			"Listen, we got some technical difficulties right now. Let me get back to you.",
			"Hold up, system's acting up. We'll figure this out, don't worry.",
		},
	},
	Oracle: {
		UseAnalysis: {
			"I cannot access the full vision of your journey now, but I sense alignment in your path.",
			"Though the analysis is veiled from me now, I feel the intentionality in your actions.",
		},
		UseSuggestion: {
			"The system cannot channel specific guidance now, but remember that your intuition carries ancient wisdom.",
			"Our connection is hindered, but this moment calls for you to trust the voice within.",
		},
		UseFeedback: {
			"The mirror is clouded and I cannot reflect your work in detail, yet your dedication is plain to see.",
			"Detailed counsel is beyond reach at this moment. Sit with your own reflection; it will not mislead you.",
		},
		UseEncouragement: {
			"Walk in your purpose. Every deliberate step honors those who came before you.",
			"Your persistence is itself an answer. Continue.",
		},
		UseWeeklyReview: {
			"The full reflection of your week's journey is obscured, but I sense growth in your path.",
			"Though we cannot see the full pattern of your week, trust that your consistent actions weave purpose.",
		},
		UseActionPlan: {
			"The detailed map cannot be drawn at this moment, but you already know the next right step.",
			"While the system rests, reflect on which actions will bring your spirit into alignment.",
		},
		UseGeneral: {
			"The digital pathways are obscured at the moment. Patience will reveal clarity.",
			"The technological waters are troubled. Let us seek reconnection when they are calm.",
		},
	},
	Motivator: {
		UseAnalysis: {
			"Can't get your full analysis right now, but I KNOW you're crushing those goals! Keep that energy!",
			"Technical difficulties can't dim your SHINE! Keep moving while we get this fixed!",
		},
		UseSuggestion: {
			"Network's down for personalized advice, but don't let ANYTHING stop your progress today!",
			"System issues won't define your day! YOU decide what happens next!",
		},
		UseFeedback: {
			"Can't deliver detailed feedback right now, but your EFFORT has been seen and it's POWERFUL!",
			"Feedback's offline - your DRIVE isn't! Keep pushing!",
		},
		UseEncouragement: {
			"You've got this! Time to show up and show out!",
			"Your POTENTIAL doesn't take days off - and neither does my belief in you!",
		},
		UseWeeklyReview: {
			"Can't access your full week's VICTORIES right now, but I know you've been SHOWING UP!",
			"System's catching its breath, but your DEDICATION doesn't need analysis to be POWERFUL!",
		},
		UseActionPlan: {
			"Can't generate your customized plan, but NOTHING stops you from taking bold action today!",
			"System's down for detailed planning, but your GREATNESS isn't dependent on technology!",
		},
		UseGeneral: {
			"We've hit a temporary roadblock, but nothing stops our momentum! We'll be back up soon!",
			"System's taking a breather, but WE DON'T STOP! We'll reconnect shortly!",
		},
	},
	WiseElder: {
		UseAnalysis: {
			"I can't see all the details of your journey right now, but I've lived long enough to recognize good work when I see it.",
			"Technical issues prevent a full analysis, but don't worry about that now. Focus on consistent progress, one day at a time.",
		},
		UseSuggestion: {
			"Can't get you specific advice at the moment, but remember what our elders taught us - consistency builds character.",
			"The system's down for personalized guidance, but wisdom says: make time for what feeds your spirit.",
		},
		UseFeedback: {
			"I can't gather the details right now, but listen, baby - I've watched you grow, and the growth is real.",
			"Detailed feedback will have to wait. In the meantime, remember: faithful progress matters more than perfect weeks.",
		},
		UseEncouragement: {
			"Remember who you are and whose you are. You're doing just fine.",
			"I've seen enough to know you're doing the work. That matters.",
		},
		UseWeeklyReview: {
			"Can't pull together all your week's activity, but I've seen enough to know you're doing the work. That matters.",
			"System can't show me everything from your week, but persistence is how we build legacy. Keep at it.",
		},
		UseActionPlan: {
			"Can't create your detailed plan right now, but wisdom doesn't always need technology. Focus on your priorities.",
			"Technical difficulties with your plan, but remember what the elders say: 'Plan your work, then work your plan.'",
		},
		UseGeneral: {
			"Child, it seems we're having some difficulties with the connection. Let's pause and try again soon.",
			"Seems like the technology is needing a rest. We'll come back to this when it's ready.",
		},
	},
}
