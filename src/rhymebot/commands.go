package rhymebot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kalexmills/pronouncing/src/haiku"
	"github.com/kalexmills/pronouncing/src/pronouncing"
)

// ErrNotCommand is returned by ParseCommand for messages that are not addressed to the bot.
var ErrNotCommand = errors.New("not a command")

type Operation uint8

const (
	OpPhones Operation = iota
	OpStresses
	OpSyllables
	OpRhymes
	OpSearch
	OpSearchStresses
	OpHaiku
	OpHelp
)

var operations = map[string]Operation{
	"phones":         OpPhones,
	"stresses":       OpStresses,
	"syllables":      OpSyllables,
	"rhymes":         OpRhymes,
	"search":         OpSearch,
	"searchstresses": OpSearchStresses,
	"haiku":          OpHaiku,
	"help":           OpHelp,
}

// takesWord reports whether op expects exactly one word.
func (op Operation) takesWord() bool {
	switch op {
	case OpPhones, OpStresses, OpSyllables, OpRhymes:
		return true
	}
	return false
}

type Command struct {
	Operation Operation
	Name      string
	Arg       string
}

// ParseCommand parses a message such as "!rhymes dove". Messages that do not start with
// prefix yield ErrNotCommand.
func ParseCommand(content, prefix string) (Command, error) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, prefix) {
		return Command{}, ErrNotCommand
	}
	content = strings.TrimPrefix(content, prefix)

	name, arg, _ := strings.Cut(content, " ")
	if i := strings.IndexAny(name, "\n\t"); i >= 0 { // "!haiku\nline one..."
		name, arg = name[:i], content[i:]
	}
	name = strings.ToLower(name)
	op, ok := operations[name]
	if !ok {
		return Command{}, fmt.Errorf("could not understand command `%s%s`; send `%shelp` for help", prefix, name, prefix)
	}
	result := Command{Operation: op, Name: name, Arg: strings.TrimSpace(arg)}

	switch {
	case op == OpHelp:
		return result, nil
	case result.Arg == "":
		return Command{}, fmt.Errorf("expected an argument after `%s%s`; send `%shelp` for help", prefix, name, prefix)
	case op.takesWord() && len(strings.Fields(result.Arg)) != 1:
		return Command{}, fmt.Errorf("expected a single word after `%s%s`", prefix, name)
	}
	return result, nil
}

// Responder answers commands from a dictionary. It does not depend on Discord.
type Responder struct {
	dict       *pronouncing.Dictionary
	counter    *haiku.Counter
	maxResults int
	prefix     string
}

func NewResponder(d *pronouncing.Dictionary, prefix string, maxResults int) *Responder {
	return &Responder{
		dict:       d,
		counter:    haiku.NewCounter(d),
		maxResults: maxResults,
		prefix:     prefix,
	}
}

// Respond returns the reply to cmd. Errors are meant to be shown to the user.
func (r *Responder) Respond(cmd Command) (string, error) {
	switch cmd.Operation {
	case OpPhones:
		phones := r.dict.PhonesForWord(cmd.Arg)
		if len(phones) == 0 {
			return r.unknownWord(cmd.Arg), nil
		}
		return "`" + strings.Join(phones, "`\n`") + "`", nil
	case OpStresses:
		stresses := r.dict.StressesForWord(cmd.Arg)
		if len(stresses) == 0 {
			return r.unknownWord(cmd.Arg), nil
		}
		return strings.Join(stresses, ", "), nil
	case OpSyllables:
		count, ok := r.counter.CountSyllables(cmd.Arg)
		if !ok {
			return r.unknownWord(cmd.Arg), nil
		}
		return fmt.Sprintf("%s has %d %s", cmd.Arg, count, plural(count, "syllable")), nil
	case OpRhymes:
		if len(r.dict.PhonesForWord(cmd.Arg)) == 0 {
			return r.unknownWord(cmd.Arg), nil
		}
		rhymes := r.dict.Rhymes(cmd.Arg)
		if len(rhymes) == 0 {
			return fmt.Sprintf("Nothing rhymes with %s.", cmd.Arg), nil
		}
		return r.list(rhymes), nil
	case OpSearch, OpSearchStresses:
		search := r.dict.Search
		if cmd.Operation == OpSearchStresses {
			search = r.dict.SearchStresses
		}
		words, err := search(cmd.Arg)
		if err != nil {
			return "", err
		}
		if len(words) == 0 {
			return fmt.Sprintf("No matches for `%s`.", cmd.Arg), nil
		}
		return r.list(words), nil
	case OpHaiku:
		if err := r.counter.IsHaiku(cmd.Arg); err != nil {
			return "Not a haiku: " + err.Error(), nil
		}
		return "That's a haiku!", nil
	case OpHelp:
		return strings.ReplaceAll(Help, "!", r.prefix), nil
	}
	return "", fmt.Errorf("unsupported operation %d", cmd.Operation)
}

func (r *Responder) unknownWord(word string) string {
	msg := fmt.Sprintf("I don't know the word %s.", word)
	if suggestions := r.dict.Suggest(word, 3); len(suggestions) > 0 {
		msg += " Did you mean " + strings.Join(suggestions, ", ") + "?"
	}
	return msg
}

func (r *Responder) list(words []string) string {
	if r.maxResults > 0 && len(words) > r.maxResults {
		more := len(words) - r.maxResults
		return strings.Join(words[:r.maxResults], ", ") + fmt.Sprintf(" ... and %d more", more)
	}
	return strings.Join(words, ", ")
}

func plural(n int, s string) string {
	if n == 1 {
		return s
	}
	return s + "s"
}

var Help = `Commands:
  ~~~!phones [word]~~~ - CMU phones for each pronunciation of a word
  ~~~!stresses [word]~~~ - stress pattern of each pronunciation (0 unstressed, 1 primary, 2 secondary)
  ~~~!syllables [word]~~~ - syllable count
  ~~~!rhymes [word]~~~ - words that rhyme with the word's first pronunciation
  ~~~!search [regex]~~~ - words whose phones match, e.g. ~~~!search ^S K L~~~
  ~~~!searchstresses [regex]~~~ - words whose stress pattern matches, e.g. ~~~!searchstresses ^010$~~~
  ~~~!haiku [text]~~~ - check a three-line 5-7-5 haiku
`

func init() {
	Help = strings.ReplaceAll(Help, "~~~", "`")
}
