package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/techtriage/pkg/kb"
)

func chatStore(t *testing.T) *kb.Store {
	t.Helper()
	store, err := kb.LoadDefault()
	require.NoError(t, err)
	return store
}

func TestConversationHappyPath(t *testing.T) {
	bot := New(chatStore(t))

	greeting := bot.Greeting()
	assert.Contains(t, greeting, "Welcome")
	assert.Equal(t, StateDeviceSelection, bot.State())

	reply := bot.Handle("it's my laptop")
	assert.Contains(t, reply, "describe the problem")
	assert.Equal(t, StateProblemDescription, bot.State())

	reply = bot.Handle("my computer is overheating and gets very hot")
	assert.Contains(t, reply, "overheating")
	assert.Contains(t, reply, "fan making loud noise")
	assert.Equal(t, StateSymptomQuestions, bot.State())

	// Five overheating questions for a computer.
	for _, answer := range []string{"yes", "yes", "no", "no"} {
		reply = bot.Handle(answer)
		assert.Equal(t, StateSymptomQuestions, bot.State(), "reply: %s", reply)
	}
	reply = bot.Handle("no")

	assert.Equal(t, StateComplete, bot.State())
	assert.Contains(t, reply, "Probable cause")

	result := bot.Result()
	require.NotNil(t, result)
	require.True(t, result.Success)
	assert.Equal(t, "COMP_HEAT_001", result.Diagnosis.RuleID)
	assert.NotEmpty(t, result.Diagnosis.Solutions)
}

func TestConversationUnclearDevice(t *testing.T) {
	bot := New(chatStore(t))
	bot.Greeting()

	reply := bot.Handle("a toaster")
	assert.Contains(t, reply, "computer' or 'mobile")
	assert.Equal(t, StateDeviceSelection, bot.State())
}

func TestConversationSkippedAnswers(t *testing.T) {
	bot := New(chatStore(t))
	bot.Greeting()
	bot.Handle("computer")
	bot.Handle("the machine is overheating")

	// Skipping every question still produces an answer, just a weaker one.
	for bot.State() == StateSymptomQuestions {
		bot.Handle("")
	}

	require.NotNil(t, bot.Result())
	assert.Equal(t, StateComplete, bot.State())
	assert.NotEmpty(t, bot.Result().Diagnosis.Solutions)
}

func TestConversationRestart(t *testing.T) {
	bot := New(chatStore(t))
	bot.Greeting()
	bot.Handle("computer")

	reply := bot.Handle("restart")
	assert.Contains(t, reply, "Welcome")
	assert.Equal(t, StateDeviceSelection, bot.State())
	assert.Nil(t, bot.Result())
}

func TestConversationStartsOnFirstMessage(t *testing.T) {
	bot := New(chatStore(t))

	// Without an explicit greeting, the first message opens the session.
	reply := bot.Handle("hello")
	assert.Contains(t, reply, "Welcome")
	assert.Equal(t, StateDeviceSelection, bot.State())
}

func TestConversationArabic(t *testing.T) {
	bot := New(chatStore(t), WithLanguage("ar"))

	greeting := bot.Greeting()
	assert.Contains(t, greeting, "مرحبًا")

	reply := bot.Handle("جوال")
	assert.Contains(t, reply, "يرجى وصف المشكلة")
	assert.Equal(t, StateProblemDescription, bot.State())
}

func TestConversationArabicQuestionPrompts(t *testing.T) {
	bot := New(chatStore(t), WithLanguage("ar"))
	bot.Greeting()
	bot.Handle("جوال")

	reply := bot.Handle("البطارية تفرغ بسرعة")
	assert.Contains(t, reply, "ما سرعة نفاد البطارية؟")
	assert.NotContains(t, reply, "How fast is the battery draining?")
	assert.Contains(t, reply, "سريع")
	assert.Equal(t, StateSymptomQuestions, bot.State())
}

func TestConversationRejectsUnknownOption(t *testing.T) {
	bot := New(chatStore(t))
	bot.Greeting()
	bot.Handle("computer")
	bot.Handle("my computer is overheating")
	require.Equal(t, StateSymptomQuestions, bot.State())

	// An answer outside the option list re-asks the same question.
	reply := bot.Handle("banana")
	assert.Contains(t, reply, "Please answer with one of")
	assert.Contains(t, reply, "fan making loud noise")
	assert.Equal(t, StateSymptomQuestions, bot.State())

	// A valid answer still advances to the next question.
	reply = bot.Handle("yes")
	assert.Contains(t, reply, "hot to touch")
}

func TestWithLanguageIgnoresUnsupported(t *testing.T) {
	bot := New(chatStore(t), WithLanguage("fr"))
	assert.Contains(t, bot.Greeting(), "Welcome")
}

func TestHistoryRecordsBothSides(t *testing.T) {
	bot := New(chatStore(t))
	bot.Greeting()
	bot.Handle("computer")

	history := bot.History()
	require.Len(t, history, 3)
	assert.Equal(t, "assistant", history[0].Role)
	assert.Equal(t, "user", history[1].Role)
	assert.Equal(t, "computer", history[1].Text)
	assert.Equal(t, "assistant", history[2].Role)
}

func TestDetectDevice(t *testing.T) {
	for input, want := range map[string]string{
		"My PC":             "computer",
		"it's an iPhone":    "mobile",
		"اللابتوب عندي خربان": "computer",
		"الجوال لا يشتغل":   "mobile",
	} {
		got, ok := detectDevice(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, ok := detectDevice("a toaster")
	assert.False(t, ok)
}

func TestCanonicalAnswer(t *testing.T) {
	assert.Equal(t, "yes", canonicalAnswer("نعم"))
	assert.Equal(t, "no", canonicalAnswer(" لا "))
	assert.Equal(t, "yes", canonicalAnswer("YES"))
	assert.Equal(t, "sometimes", canonicalAnswer("sometimes"))
	assert.Equal(t, "", canonicalAnswer("   "))
}
