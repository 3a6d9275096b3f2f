// Package conversation simulates the assistant: a message list, an input
// buffer and a single delayed reply picked from the translation tables.
package conversation

import (
	"math/rand/v2"
	"strings"

	"github.com/zhubert/manus/internal/i18n"
)

// trigger maps phrase keys to the reply used when any phrase appears in the
// input. Order matters: the first matching trigger wins.
type trigger struct {
	phrases []string
	reply   string
}

var triggers = []trigger{
	{phrases: []string{"hello", "hi"}, reply: "responseHello"},
	{phrases: []string{"howAreYou"}, reply: "responseHowAreYou"},
	{phrases: []string{"thank"}, reply: "responseThankYou"},
	{phrases: []string{"help", "assist"}, reply: "responseHelp"},
}

var genericReplies = []string{
	"genericResponse1",
	"genericResponse2",
	"genericResponse3",
	"genericResponse4",
	"genericResponse5",
	"genericResponse6",
}

// Responder picks a canned reply for user input. It is stateless apart from
// its random source.
type Responder struct {
	t    i18n.Translator
	rand *rand.Rand
}

// NewResponder returns a responder translating through t. A nil r uses a
// randomly seeded source.
func NewResponder(t i18n.Translator, r *rand.Rand) *Responder {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Responder{t: t, rand: r}
}

// GenerateResponse matches input case-insensitively against the translated
// trigger phrases and falls back to a random generic reply.
func (r *Responder) GenerateResponse(input string) string {
	lower := strings.ToLower(input)
	for _, tr := range triggers {
		for _, key := range tr.phrases {
			phrase := strings.ToLower(r.t.T(key))
			if phrase != "" && strings.Contains(lower, phrase) {
				return r.t.T(tr.reply)
			}
		}
	}
	return r.t.T(genericReplies[r.rand.IntN(len(genericReplies))])
}
