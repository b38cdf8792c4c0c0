// Package chat implements the conversational layer: a small state machine
// that collects the device type, classifies the free-text problem, walks
// the symptom questions for the predicted category, and hands the
// collected facts to the inference engine.
package chat

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mrhapile/techtriage/pkg/classify"
	"github.com/mrhapile/techtriage/pkg/engine"
	"github.com/mrhapile/techtriage/pkg/i18n"
	"github.com/mrhapile/techtriage/pkg/kb"
	"github.com/mrhapile/techtriage/pkg/types"
)

// State names one step of the conversation.
type State string

const (
	StateStart              State = "start"
	StateDeviceSelection    State = "device_selection"
	StateProblemDescription State = "problem_description"
	StateSymptomQuestions   State = "symptom_questions"
	StateComplete           State = "complete"
)

// Message is one turn of the conversation history.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Context is the mutable state of one conversation. It is owned by
// exactly one Bot and discarded on Reset.
type Context struct {
	State              State
	Device             string
	Problem            string
	Category           string
	CategoryConfidence float64
	Symptoms           types.Facts
	Questions          []kb.Question
	QuestionIndex      int
	Result             *types.DiagnosisResult
	History            []Message
}

// Bot drives one troubleshooting conversation. Each bot owns its own
// engine session; only the rule store behind it is shared.
type Bot struct {
	id         string
	lang       string
	logger     *zap.Logger
	classifier *classify.Classifier
	engine     *engine.Engine
	ctx        Context
}

// Option configures a Bot.
type Option func(*Bot)

// WithLanguage sets the conversation language ("en" or "ar").
func WithLanguage(lang string) Option {
	return func(b *Bot) {
		if i18n.Supported(lang) {
			b.lang = lang
		}
	}
}

// WithLogger attaches a logger for session events.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bot) { b.logger = l }
}

// New creates a bot bound to the given rule store.
func New(store *kb.Store, opts ...Option) *Bot {
	b := &Bot{
		id:         uuid.NewString(),
		lang:       i18n.DefaultLanguage,
		logger:     zap.NewNop(),
		classifier: classify.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.engine = engine.New(store, engine.WithLogger(b.logger))
	b.Reset()
	return b
}

// ID returns the session identifier.
func (b *Bot) ID() string { return b.id }

// State returns the current conversation state.
func (b *Bot) State() State { return b.ctx.State }

// Result returns the diagnosis once the conversation reaches it, or nil.
func (b *Bot) Result() *types.DiagnosisResult { return b.ctx.Result }

// History returns the conversation transcript so far.
func (b *Bot) History() []Message {
	out := make([]Message, len(b.ctx.History))
	copy(out, b.ctx.History)
	return out
}

// Reset discards all conversation and inference state.
func (b *Bot) Reset() {
	b.ctx = Context{State: StateStart, Symptoms: make(types.Facts)}
	b.engine.Reset()
	b.logger.Debug("session reset", zap.String("session", b.id))
}

// Greeting opens the conversation and moves to device selection.
func (b *Bot) Greeting() string {
	b.ctx.State = StateDeviceSelection
	reply := fmt.Sprintf("%s\n%s\n\n%s\n%s\n- %s\n- %s",
		b.t("welcome"), b.t("welcome_help"), b.t("lets_start"), b.t("select_device"),
		b.t("computer_option"), b.t("mobile_option"))
	b.say("assistant", reply)
	return reply
}

// Handle processes one user message and returns the assistant's reply.
func (b *Bot) Handle(input string) string {
	input = strings.TrimSpace(input)
	b.say("user", input)

	if strings.EqualFold(input, "restart") {
		b.Reset()
		return b.Greeting()
	}

	var reply string
	switch b.ctx.State {
	case StateStart:
		reply = b.Greeting()
		return reply
	case StateDeviceSelection:
		reply = b.handleDevice(input)
	case StateProblemDescription:
		reply = b.handleProblem(input)
	case StateSymptomQuestions:
		reply = b.handleAnswer(input)
	default:
		reply = b.t("restart_hint")
	}
	b.say("assistant", reply)
	return reply
}

func (b *Bot) handleDevice(input string) string {
	device, ok := detectDevice(input)
	if !ok {
		return b.t("device_unclear")
	}
	b.ctx.Device = device
	b.ctx.State = StateProblemDescription
	return b.t("describe_problem")
}

func (b *Bot) handleProblem(input string) string {
	b.ctx.Problem = input
	pred := b.classifier.Classify(input)
	b.ctx.Category = pred.Category
	b.ctx.CategoryConfidence = pred.Confidence
	b.logger.Debug("problem classified",
		zap.String("session", b.id),
		zap.String("category", pred.Category),
		zap.Float64("confidence", pred.Confidence))

	b.ctx.Questions = kb.QuestionsFor(b.ctx.Device, b.ctx.Category)
	b.ctx.QuestionIndex = 0

	header := fmt.Sprintf(b.t("problem_detected"),
		i18n.CategoryName(pred.Category, b.lang), pred.Confidence*100)
	if len(b.ctx.Questions) == 0 {
		return header + "\n\n" + b.diagnose()
	}
	b.ctx.State = StateSymptomQuestions
	return header + "\n" + b.t("ask_questions") + " " + b.t("skip_hint") +
		"\n\n" + b.renderQuestion()
}

func (b *Bot) handleAnswer(input string) string {
	q := b.ctx.Questions[b.ctx.QuestionIndex]
	answer := canonicalAnswer(input)
	if answer != "" && !optionAllowed(q.Options, answer) {
		return fmt.Sprintf(b.t("invalid_option"), strings.Join(b.optionLabels(q), " / ")) +
			"\n" + b.renderQuestion()
	}
	if answer != "" {
		b.ctx.Symptoms[q.Key] = types.StringValue(answer)
	}
	b.ctx.QuestionIndex++
	if b.ctx.QuestionIndex < len(b.ctx.Questions) {
		return b.renderQuestion()
	}
	return b.diagnose()
}

func (b *Bot) diagnose() string {
	result := b.engine.Diagnose(b.ctx.Device, b.ctx.Category, b.ctx.Symptoms)
	b.ctx.Result = &result
	b.ctx.State = StateComplete
	return b.renderDiagnosis(result) + "\n\n" + b.t("session_done")
}

func (b *Bot) renderQuestion() string {
	q := b.ctx.Questions[b.ctx.QuestionIndex]
	prompt := i18n.QuestionPrompt(q.Key, q.Prompt, b.lang)
	return prompt + " [" + strings.Join(b.optionLabels(q), " / ") + "]"
}

func (b *Bot) optionLabels(q kb.Question) []string {
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		labels[i] = i18n.Option(opt, b.lang)
	}
	return labels
}

func (b *Bot) renderDiagnosis(result types.DiagnosisResult) string {
	var sb strings.Builder
	sb.WriteString(b.t("diagnosis_title") + "\n")
	if !result.Success {
		sb.WriteString(b.t("general_advice") + "\n")
	}
	d := result.Diagnosis
	sb.WriteString(fmt.Sprintf("%s: %s\n", b.t("probable_cause"), b.cause(d)))
	sb.WriteString(fmt.Sprintf("%s: %.0f%%\n", b.t("confidence"), d.Confidence*100))
	sb.WriteString(b.t("solutions") + ":\n")
	for _, sol := range b.solutions(d) {
		sb.WriteString("- " + sol + "\n")
	}
	if d.Explanation != "" {
		sb.WriteString(fmt.Sprintf("%s: %s\n", b.t("explanation"), d.Explanation))
	}
	if len(result.Alternatives) > 0 {
		sb.WriteString(b.t("alternatives") + ":\n")
		for _, alt := range result.Alternatives {
			sb.WriteString(fmt.Sprintf("- %s (%.0f%%)\n", b.cause(alt), alt.Confidence*100))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (b *Bot) cause(d types.Diagnosis) string {
	if b.lang == i18n.LangArabic && d.CauseAr != "" {
		return d.CauseAr
	}
	return d.Cause
}

func (b *Bot) solutions(d types.Diagnosis) []string {
	if b.lang == i18n.LangArabic && len(d.SolutionsAr) > 0 {
		return d.SolutionsAr
	}
	return d.Solutions
}

func (b *Bot) t(key string) string { return i18n.T(key, b.lang) }

func (b *Bot) say(role, text string) {
	b.ctx.History = append(b.ctx.History, Message{Role: role, Text: text})
}
