package rhymebot

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kalexmills/pronouncing/src/pronouncing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDict = `ABOVE  AH0 B AH1 V
DOVE  D AH1 V
DOVE(1)  D OW1 V
GLOVE  G L AH1 V
LOVE  L AH1 V
OF  AH1 V
ORANGE  AO1 R AH0 N JH
PERMIT  P ER0 M IH1 T
PERMIT(1)  P ER1 M IH2 T
PURPLE  P ER1 P AH0 L
A  AH0
AGAIN  AH0 G EH1 N
AN  AE1 N
FROG  F R AA1 G
INTO  IH1 N T UW0
JUMPS  JH AH1 M P S
OLD  OW1 L D
POND  P AA1 N D
SILENCE  S AY1 L AH0 N S
SILENT  S AY1 L AH0 N T
SPLASH  S P L AE1 SH
THE  DH AH0
`

func newTestResponder(t *testing.T, maxResults int) *Responder {
	t.Helper()
	d, err := pronouncing.Load(strings.NewReader(testDict))
	require.NoError(t, err)
	return NewResponder(d, "!", maxResults)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		content string
		want    Command
		err     string
	}{
		{content: "!rhymes dove", want: Command{Operation: OpRhymes, Name: "rhymes", Arg: "dove"}},
		{content: "  !RHYMES   dove  ", want: Command{Operation: OpRhymes, Name: "rhymes", Arg: "dove"}},
		{content: "!help", want: Command{Operation: OpHelp, Name: "help"}},
		{content: "!search ^S K L", want: Command{Operation: OpSearch, Name: "search", Arg: "^S K L"}},
		{content: "!searchstresses ^010$", want: Command{Operation: OpSearchStresses, Name: "searchstresses", Arg: "^010$"}},
		{
			content: "!haiku\nan old silent pond\na frog jumps into the pond\nsplash! silence again.",
			want: Command{
				Operation: OpHaiku,
				Name:      "haiku",
				Arg:       "an old silent pond\na frog jumps into the pond\nsplash! silence again.",
			},
		},
		{content: "!rhymes", err: "expected an argument after `!rhymes`; send `!help` for help"},
		{content: "!phones two words", err: "expected a single word after `!phones`"},
		{content: "!dance", err: "could not understand command `!dance`; send `!help` for help"},
	}

	for _, tt := range tests {
		cmd, err := ParseCommand(tt.content, "!")
		if tt.err != "" {
			assert.EqualError(t, err, tt.err, tt.content)
			continue
		}
		if assert.NoError(t, err, tt.content) {
			assert.Equal(t, tt.want, cmd, tt.content)
		}
	}
}

func TestParseCommand_NotCommand(t *testing.T) {
	for _, content := range []string{"", "hello there", "rhymes dove", "?rhymes dove"} {
		_, err := ParseCommand(content, "!")
		assert.ErrorIs(t, err, ErrNotCommand, content)
	}
}

func TestRespond(t *testing.T) {
	r := newTestResponder(t, 0)

	tests := []struct {
		op   Operation
		arg  string
		want string
	}{
		{OpPhones, "permit", "`P ER0 M IH1 T`\n`P ER1 M IH2 T`"},
		{OpPhones, "prple", "I don't know the word prple. Did you mean purple?"},
		{OpStresses, "Permit", "01, 12"},
		{OpSyllables, "purple", "purple has 2 syllables"},
		{OpSyllables, "a", "a has 1 syllable"},
		{OpSyllables, "frogs", "frogs has 1 syllable"},
		{OpRhymes, "dove", "above, glove, love, of"},
		{OpRhymes, "orange", "Nothing rhymes with orange."},
		{OpSearch, "AH1 V$", "above, dove, glove, love, of"},
		{OpSearch, "ZH", "No matches for `ZH`."},
		{OpSearchStresses, "^01$", "above, permit, again"},
		{OpHaiku, "an old silent pond\na frog jumps into the pond\nsplash! silence again.", "That's a haiku!"},
		{OpHaiku, "an old pond\na frog jumps into the pond\nsplash! silence again.", "Not a haiku: line 1 has 3 syllables, expected 5"},
	}

	for _, tt := range tests {
		got, err := r.Respond(Command{Operation: tt.op, Arg: tt.arg})
		if assert.NoError(t, err, tt.arg) {
			assert.Equal(t, tt.want, got, tt.arg)
		}
	}
}

func TestRespond_BadPattern(t *testing.T) {
	r := newTestResponder(t, 0)

	_, err := r.Respond(Command{Operation: OpSearch, Arg: "("})
	var patternErr *pronouncing.PatternError
	if assert.ErrorAs(t, err, &patternErr) {
		assert.Equal(t, "(", patternErr.Pattern)
	}
}

func TestRespond_MaxResults(t *testing.T) {
	r := newTestResponder(t, 2)

	got, err := r.Respond(Command{Operation: OpRhymes, Arg: "dove"})
	require.NoError(t, err)
	assert.Equal(t, "above, glove ... and 2 more", got)
}

func TestRespond_Help(t *testing.T) {
	d, err := pronouncing.Load(strings.NewReader(testDict))
	require.NoError(t, err)
	r := NewResponder(d, "?", 0)

	got, err := r.Respond(Command{Operation: OpHelp})
	require.NoError(t, err)
	assert.Contains(t, got, "`?rhymes [word]`")
	assert.NotContains(t, got, "~~~")
	assert.NotContains(t, got, "!")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short"))

	long := truncate(strings.Repeat("é", 1500))
	assert.LessOrEqual(t, len(long), maxMessageLength)
	assert.True(t, utf8.ValidString(long))
	assert.True(t, strings.HasSuffix(long, "..."))
}
