package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/BG-legacy/TimeWell/internal/types"
	"github.com/BG-legacy/TimeWell/internal/voice"
)

// AlignmentSchemaName is the identifier sent with the structured-output
// request for goal-alignment analyses.
const AlignmentSchemaName = "goal_alignment"

// AlignmentResult is the contract between the model and the analysis
// pipeline. Score runs 1-10 with 10 meaning perfectly aligned; the fallback
// path uses 5 as a neutral sentinel. AlignedGoals carries goal-id strings as
// returned by the model, unvalidated. NewGoalSuggestion is nil when the
// event already aligns with an existing goal.
type AlignmentResult struct {
	Score             int      `json:"score"`
	AlignedGoals      []string `json:"aligned_goals"`
	Analysis          string   `json:"analysis"`
	Suggestion        string   `json:"suggestion"`
	NewGoalSuggestion *string  `json:"new_goal_suggestion"`
	Fallback          bool     `json:"fallback"`
}

// AlignmentSchema is the JSON schema enforced on the model's output.
func AlignmentSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     10,
				"description": "Alignment score from 1-10 (10 being perfectly aligned).",
			},
			"aligned_goals": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of goal IDs this event contributes to.",
			},
			"analysis": map[string]any{
				"type":        "string",
				"description": "Brief analysis of the alignment (2-3 sentences).",
			},
			"suggestion": map[string]any{
				"type":        "string",
				"description": "One suggestion to improve alignment with goals.",
			},
			"new_goal_suggestion": map[string]any{
				"type":        []string{"string", "null"},
				"description": "Suggested new goal if the event doesn't align with any existing goals, or null.",
			},
		},
		"required":             []string{"score", "aligned_goals", "analysis", "suggestion", "new_goal_suggestion"},
		"additionalProperties": false,
	}
}

// RenderAlignmentSystemPrompt combines the voice persona with the fixed
// analyst instruction. The persona only shapes tone; the task definition is
// identical for every style.
func RenderAlignmentSystemPrompt(style voice.Style) string {
	var b strings.Builder
	b.WriteString(style.Description())
	b.WriteString("\n\n")
	b.WriteString("You are analyzing time management and goal alignment. ")
	b.WriteString("Your task is to analyze how well an event aligns with the user's goals and provide meaningful insights. ")
	b.WriteString("Provide a concise analysis, a score from 1-10 (10 being perfectly aligned), and suggestions for improvement.")
	return b.String()
}

// RenderAlignmentUserPrompt lays out the event and the user's goals. Goals
// are enumerated with their IDs so the model can reference them in
// aligned_goals; a user with no goals gets an explicit marker instead of an
// empty section.
func RenderAlignmentUserPrompt(event *types.Event, goals []*types.Goal) string {
	var b strings.Builder
	b.WriteString("Please analyze this event:\n\n")
	b.WriteString("EVENT:\n")
	fmt.Fprintf(&b, "Title: %s\n", event.Title)
	fmt.Fprintf(&b, "Description: %s\n", event.Description)
	fmt.Fprintf(&b, "Start Time: %s\n", event.StartTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "End Time: %s\n", formatOptionalTime(event.EndTime))
	fmt.Fprintf(&b, "Completed: %t\n", event.IsCompleted)
	b.WriteString("\nUSER'S GOALS:\n")
	if len(goals) == 0 {
		b.WriteString("No goals found for this user.\n")
	} else {
		for _, g := range goals {
			fmt.Fprintf(&b, "- id: %s | title: %s | description: %s | target_date: %s | completed: %t\n",
				g.ID, g.Title, g.Description, formatOptionalTime(g.TargetDate), g.IsCompleted)
		}
	}
	b.WriteString("\nAnalyze how well this event aligns with the user's goals.\n")
	b.WriteString("Provide:\n")
	b.WriteString("1. An alignment score (1-10)\n")
	b.WriteString("2. Which goals (if any) this event contributes to\n")
	b.WriteString("3. A brief analysis (2-3 sentences)\n")
	b.WriteString("4. One suggestion to improve alignment\n")
	b.WriteString("5. If the event doesn't align with any goals, suggest a new potential goal it might support\n")
	return b.String()
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return "not set"
	}
	return t.Format(time.RFC3339)
}
