package chat

import (
	"math/rand/v2"
	"time"
)

// Default delays for simulated replies.
const (
	DefaultMinDelay    = time.Second
	DefaultMaxDelay    = 3 * time.Second
	DefaultActionDelay = time.Second
)

// CannedReplies are the stand-in assistant answers.
var CannedReplies = []string{
	"I'm a demo version of a chat assistant. This is a simulated response to show how the interface works.",
	"This is a clone of a chat assistant interface. The actual AI functionality would require integration with a language model API.",
	"Hello! I'm simulating an assistant response. In a real implementation, this would connect to an AI service.",
	"This interface mimics a chat assistant's design. Real responses would come from a language model API.",
	"I'm demonstrating how the chat interface works. Each message you send will get a simulated response like this one.",
}

// Responder produces the delay and text of simulated replies.
type Responder interface {
	ReplyDelay() time.Duration
	Reply() string
}

// CannedResponder picks uniformly from a fixed reply set after a uniformly
// distributed delay in [MinDelay, MaxDelay).
type CannedResponder struct {
	MinDelay time.Duration
	MaxDelay time.Duration
	Replies  []string

	rng *rand.Rand
}

// NewCannedResponder creates a responder. A zero seed draws from the runtime
// entropy source; any other seed gives a reproducible sequence.
func NewCannedResponder(minDelay, maxDelay time.Duration, seed uint64) *CannedResponder {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
	return &CannedResponder{
		MinDelay: minDelay,
		MaxDelay: maxDelay,
		Replies:  CannedReplies,
		rng:      rand.New(src),
	}
}

// ReplyDelay implements Responder.
func (r *CannedResponder) ReplyDelay() time.Duration {
	if r.MaxDelay <= r.MinDelay {
		return r.MinDelay
	}
	return r.MinDelay + time.Duration(r.rng.Int64N(int64(r.MaxDelay-r.MinDelay)))
}

// Reply implements Responder.
func (r *CannedResponder) Reply() string {
	if len(r.Replies) == 0 {
		return ""
	}
	return r.Replies[r.rng.IntN(len(r.Replies))]
}
