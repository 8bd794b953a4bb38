package responder

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-medcare/models"
)

const (
	EmptyReply = "Please send a message."

	CrisisReply = "I'm really sorry you're feeling this way. You deserve support right now. " +
		"If you are in immediate danger, please call your local emergency number. " +
		"You can also reach a crisis line such as 988 (US) or a local helpline, " +
		"and consider telling someone you trust. You are not alone."

	PanicReply = "It sounds like panic. Let's slow down together: breathe in for 4 seconds, " +
		"hold for 4, breathe out for 6. Repeat five times and notice your feet on the floor."

	SleepReply = "Sleep troubles are hard. Try a fixed wake-up time, no screens for 30 minutes " +
		"before bed, and a short wind-down routine like reading or stretching."

	ExamReply = "Exams can feel overwhelming. Break study into 25-minute blocks with short " +
		"breaks, start with one small topic, and remember to eat and rest."

	GenericReply = "Thank you for sharing. Let's try a quick grounding exercise: name 5 things " +
		"you can see, 4 you can touch, 3 you can hear, 2 you can smell and 1 you can taste."
)

// rule matches whole words or phrases only, so "contest" is not a test and
// "latest" is not a test. Inflections are listed explicitly.
type rule struct {
	pattern *regexp.Regexp
	reply   string
	source  models.ReplySource
}

func newRule(reply string, source models.ReplySource, phrases ...string) rule {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return rule{
		pattern: regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`),
		reply:   reply,
		source:  source,
	}
}

func (r rule) matches(text string) bool {
	return r.pattern.MatchString(text)
}

var crisisRule = newRule(CrisisReply, models.ReplySourceCrisis,
	"kill myself", "killing myself", "suicide", "suicidal", "end my life",
	"self harm", "self-harm", "hurt myself", "want to die",
)

// rules are checked in order after the crisis rule.
var rules = []rule{
	newRule(PanicReply, models.ReplySourceKeyword,
		"panic", "panicking", "panicked", "can't breathe", "cannot breathe", "heart racing"),
	newRule(SleepReply, models.ReplySourceKeyword,
		"sleep", "sleeping", "sleepless", "insomnia", "nightmare", "nightmares"),
	newRule(ExamReply, models.ReplySourceKeyword,
		"exam", "exams", "test", "tests", "study", "studying", "assignment", "assignments",
		"deadline", "deadlines", "grades"),
}
