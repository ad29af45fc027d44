package mentor

import (
	"math/rand"
	"strings"
)

// Responder picks canned mentor replies. It lives outside the progression
// engine; the pick function is injectable so callers can pin the choice.
type Responder struct {
	pick func(n int) int
}

func NewResponder(seed int64) *Responder {
	rng := rand.New(rand.NewSource(seed))
	return &Responder{pick: rng.Intn}
}

// NewResponderWithPick plugs in a custom selection function.
func NewResponderWithPick(pick func(n int) int) *Responder {
	return &Responder{pick: pick}
}

var defaultResponses = []string{
	"That's an interesting perspective! How does this relate to your current goals?",
	"I appreciate you sharing that. What action step could you take based on this insight?",
	"Excellent! Building on that thought, what would success look like for you?",
	"That shows great self-awareness. How can we turn this into a learning opportunity?",
	"I see the potential here. What resources or support do you need to move forward?",
}

// Respond returns a mentor reply for the question. A few keyword families
// get targeted advice; everything else draws from the canned pool.
func (r *Responder) Respond(question string) string {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, "goal", "want to", "need to"):
		return "That sounds like a great goal! Let me create a personalized quest to help you achieve it. 🎯"
	case containsAny(q, "stuck", "difficult", "hard"):
		return "I understand it feels challenging right now. Remember, every expert was once a beginner. Let's break this down into smaller, manageable steps. What specific part is causing you the most difficulty?"
	case containsAny(q, "procrastinate", "motivation"):
		return "Procrastination is often fear in disguise. Let's tackle this with a micro-habit approach. What's the smallest step you could take right now that would move you forward?"
	case containsAny(q, "productive", "focus"):
		return "Great question! Here are some proven techniques: 1) Use the Pomodoro Technique (25min focused work + 5min break), 2) Eliminate distractions, 3) Set clear priorities for the day. Which resonates most with you?"
	}

	return defaultResponses[r.pick(len(defaultResponses))]
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
