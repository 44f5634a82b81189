package command

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/display"
	"github.com/tartampluch/go-contactbook/internal/entity"
)

var (
	contactPrefixes = []string{
		config.PrefixName, config.PrefixPhone, config.PrefixEmail,
		config.PrefixAddress, config.PrefixLink, config.PrefixTag,
	}
	eventPrefixes = []string{
		config.PrefixName, config.PrefixFrom, config.PrefixTo,
		config.PrefixAddress, config.PrefixDescription, config.PrefixTag,
	}
)

// Target selects the list a command works on.
type Target int

const (
	BothLists Target = iota
	ContactList
	EventList
)

func parseTarget(word string) (Target, bool) {
	switch strings.ToLower(word) {
	case config.TargetContact, config.TargetContacts:
		return ContactList, true
	case config.TargetEvent, config.TargetEvents:
		return EventList, true
	}
	return BothLists, false
}

// Parser turns a command line into a Command. Field values are validated
// here, so a Command that parses cleanly only fails on model conflicts.
type Parser struct {
	Palette *entity.TagPalette
}

// NewParser returns a parser resolving tags through palette.
func NewParser(palette *entity.TagPalette) *Parser {
	return &Parser{Palette: palette}
}

// Parse reads the command word and hands the rest of the line to the
// matching sub-parser.
func (p *Parser) Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fail(config.TKeyErrUnknownCommand, map[string]any{"Input": line}, ErrUnknownCommand)
	}
	word := strings.ToLower(fields[0])
	rawArgs := strings.TrimSpace(line[len(fields[0]):])

	switch word {
	case config.CmdAdd:
		return p.parseAdd(rawArgs)
	case config.CmdEdit:
		return p.parseEdit(rawArgs)
	case config.CmdDelete:
		return parseDelete(rawArgs)
	case config.CmdLink, config.CmdUnlink:
		return parseLink(word, rawArgs)
	case config.CmdFind:
		return parseFind(rawArgs)
	case config.CmdList:
		return parseList(rawArgs)
	case config.CmdShow, config.CmdHide:
		return parseDisplay(word, rawArgs)
	case config.CmdSort:
		return parseSort(rawArgs)
	case config.CmdHistory:
		return parseHistory(rawArgs)
	case config.CmdImport:
		return parseImport(rawArgs)
	case config.CmdExport:
		return parseExport(rawArgs)
	case config.CmdClear, config.CmdUndo, config.CmdRedo, config.CmdHelp, config.CmdExit:
		if rawArgs != "" {
			return nil, usageError(fmt.Sprintf(config.UsageNoArgs, word))
		}
		return bareCommand(word), nil
	default:
		return nil, fail(config.TKeyErrUnknownCommand, map[string]any{"Input": line}, ErrUnknownCommand)
	}
}

func bareCommand(word string) Command {
	switch word {
	case config.CmdClear:
		return Clear{}
	case config.CmdUndo:
		return Undo{}
	case config.CmdRedo:
		return Redo{}
	case config.CmdHelp:
		return Help{}
	default:
		return Exit{}
	}
}

// splitTarget separates the first word of args from the remainder.
func splitTarget(args string) (Target, string, bool) {
	head, rest := args, ""
	if i := strings.IndexFunc(args, unicode.IsSpace); i >= 0 {
		head, rest = args[:i], args[i:]
	}
	t, ok := parseTarget(head)
	return t, strings.TrimSpace(rest), ok
}

// -----------------------------------------------------------------------------
// Add / Edit
// -----------------------------------------------------------------------------

func (p *Parser) parseAdd(args string) (Command, error) {
	t, rest, ok := splitTarget(args)
	if !ok {
		return nil, usageError(config.UsageAddContact + " | " + config.UsageAddEvent)
	}
	if t == ContactList {
		return p.parseAddContact(rest)
	}
	return p.parseAddEvent(rest)
}

func (p *Parser) parseAddContact(args string) (Command, error) {
	m := tokenize(args, contactPrefixes...)
	if m.preamble != "" || !m.has(config.PrefixName) {
		return nil, usageError(config.UsageAddContact)
	}
	edit, err := p.contactEdit(m)
	if err != nil {
		return nil, err
	}
	c, err := entity.NewContact(edit.apply(entity.ContactFields{}))
	if err != nil {
		return nil, err
	}
	return AddContact{Contact: c}, nil
}

func (p *Parser) parseAddEvent(args string) (Command, error) {
	m := tokenize(args, eventPrefixes...)
	if m.preamble != "" || !m.has(config.PrefixName) || !m.has(config.PrefixFrom) {
		return nil, usageError(config.UsageAddEvent)
	}
	edit, err := p.eventEdit(m)
	if err != nil {
		return nil, err
	}
	e, err := entity.NewEvent(edit.apply(entity.EventFields{}))
	if err != nil {
		return nil, err
	}
	return AddEvent{Event: e}, nil
}

func (p *Parser) parseEdit(args string) (Command, error) {
	t, rest, ok := splitTarget(args)
	if !ok {
		return nil, usageError(config.UsageEdit)
	}

	prefixes := contactPrefixes
	if t == EventList {
		prefixes = eventPrefixes
	}
	m := tokenize(rest, prefixes...)
	if m.preamble == "" || !m.hasAny(prefixes...) {
		return nil, usageError(config.UsageEdit)
	}
	index, err := parseIndex(m.preamble)
	if err != nil {
		return nil, err
	}

	if t == ContactList {
		edit, err := p.contactEdit(m)
		if err != nil {
			return nil, err
		}
		return EditContact{Index: index, Edit: edit}, nil
	}
	edit, err := p.eventEdit(m)
	if err != nil {
		return nil, err
	}
	return EditEvent{Index: index, Edit: edit}, nil
}

func (p *Parser) contactEdit(m argMap) (ContactEdit, error) {
	var (
		e   ContactEdit
		err error
	)
	if e.Name, err = given(m, config.PrefixName, entity.NewName); err != nil {
		return e, err
	}
	if e.Phone, err = optional(m, config.PrefixPhone, entity.NewPhone); err != nil {
		return e, err
	}
	if e.Email, err = optional(m, config.PrefixEmail, entity.NewEmail); err != nil {
		return e, err
	}
	if e.Address, err = optional(m, config.PrefixAddress, entity.NewAddress); err != nil {
		return e, err
	}
	if e.Link, err = optional(m, config.PrefixLink, entity.NewLink); err != nil {
		return e, err
	}
	e.Tags, err = p.tags(m)
	return e, err
}

func (p *Parser) eventEdit(m argMap) (EventEdit, error) {
	var (
		e   EventEdit
		err error
	)
	if e.Name, err = given(m, config.PrefixName, entity.NewName); err != nil {
		return e, err
	}
	if e.Start, err = given(m, config.PrefixFrom, entity.ParseDateTime); err != nil {
		return e, err
	}
	if e.End, err = optional(m, config.PrefixTo, entity.ParseDateTime); err != nil {
		return e, err
	}
	if e.Address, err = optional(m, config.PrefixAddress, entity.NewAddress); err != nil {
		return e, err
	}
	if e.Description, err = optional(m, config.PrefixDescription, entity.NewDescription); err != nil {
		return e, err
	}
	e.Tags, err = p.tags(m)
	return e, err
}

// tags returns nil when no t/ was given, and an empty slice for a bare t/.
func (p *Parser) tags(m argMap) (*[]entity.Tag, error) {
	if !m.has(config.PrefixTag) {
		return nil, nil
	}
	tags, err := p.Palette.Tags(m.all(config.PrefixTag))
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []entity.Tag{}
	}
	return &tags, nil
}

// given parses the last value of prefix, even when empty. It returns nil
// when the prefix is absent.
func given[T any](m argMap, prefix string, parse func(string) (T, error)) (*T, error) {
	v, ok := m.value(prefix)
	if !ok {
		return nil, nil
	}
	x, err := parse(v)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// optional parses the last value of prefix. It returns nil when the prefix
// is absent and a pointer to the zero value when it was given empty.
func optional[T any](m argMap, prefix string, parse func(string) (T, error)) (*T, error) {
	v, ok := m.value(prefix)
	if !ok {
		return nil, nil
	}
	var x T
	if v == "" {
		return &x, nil
	}
	x, err := parse(v)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// -----------------------------------------------------------------------------
// Index based commands
// -----------------------------------------------------------------------------

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 1 {
		return 0, fail(config.TKeyErrInvalidIndex, map[string]any{"Index": s}, ErrInvalidIndex)
	}
	return i, nil
}

func parseDelete(args string) (Command, error) {
	t, rest, ok := splitTarget(args)
	if !ok || rest == "" {
		return nil, usageError(config.UsageDelete)
	}
	index, err := parseIndex(rest)
	if err != nil {
		return nil, err
	}
	if t == ContactList {
		return DeleteContact{Index: index}, nil
	}
	return DeleteEvent{Index: index}, nil
}

func parseLink(word, args string) (Command, error) {
	m := tokenize(args, config.PrefixEvent, config.PrefixContact)
	evArg, okEv := m.value(config.PrefixEvent)
	cArg, okC := m.value(config.PrefixContact)
	if m.preamble != "" || !okEv || !okC {
		return nil, usageError(config.UsageLink)
	}
	ev, err := parseIndex(evArg)
	if err != nil {
		return nil, err
	}
	c, err := parseIndex(cArg)
	if err != nil {
		return nil, err
	}
	if word == config.CmdUnlink {
		return Unlink{Event: ev, Contact: c}, nil
	}
	return Link{Event: ev, Contact: c}, nil
}

// -----------------------------------------------------------------------------
// View commands
// -----------------------------------------------------------------------------

func parseFind(args string) (Command, error) {
	t, rest, ok := splitTarget(args)
	if !ok {
		return nil, usageError(config.UsageFind)
	}
	m := tokenize(rest, config.PrefixTag)
	keywords := strings.Fields(m.preamble)
	tags := m.all(config.PrefixTag)
	if len(keywords) == 0 && len(tags) == 0 {
		return nil, usageError(config.UsageFind)
	}
	for _, tag := range tags {
		if !entity.IsValidTagLabel(tag) {
			return nil, &entity.ValidationError{Field: config.FieldTag, Value: tag, Reason: config.ReasonTag}
		}
	}
	f := display.NewFilter(keywords, tags)
	if t == ContactList {
		return FindContacts{Filter: f}, nil
	}
	return FindEvents{Filter: f}, nil
}

func parseList(args string) (Command, error) {
	if args == "" {
		return List{}, nil
	}
	t, rest, ok := splitTarget(args)
	if !ok || rest != "" {
		return nil, usageError(config.UsageList)
	}
	return List{Target: t}, nil
}

func parseDisplay(word, args string) (Command, error) {
	t, rest, ok := splitTarget(args)
	if !ok || rest == "" {
		return nil, usageError(config.UsageDisplay)
	}
	fields := strings.Fields(strings.ToLower(rest))
	return ChangeDisplay{Target: t, Fields: fields, Visible: word == config.CmdShow}, nil
}

func parseSort(args string) (Command, error) {
	t, rest, ok := splitTarget(args)
	if !ok || rest != "" {
		return nil, usageError(config.UsageSort)
	}
	if t == ContactList {
		return SortContacts{}, nil
	}
	return SortEvents{}, nil
}

// -----------------------------------------------------------------------------
// Session commands
// -----------------------------------------------------------------------------

func parseHistory(args string) (Command, error) {
	switch strings.ToLower(args) {
	case "":
		return History{}, nil
	case config.SubClear:
		return ClearHistory{}, nil
	}
	return nil, usageError(config.UsageHistory)
}

func parseImport(args string) (Command, error) {
	m := tokenize(args, config.PrefixUser)
	if m.preamble == "" {
		return nil, usageError(config.UsageImport)
	}
	user, _ := m.value(config.PrefixUser)
	return Import{Source: m.preamble, User: user}, nil
}

func parseExport(args string) (Command, error) {
	t, rest, ok := splitTarget(args)
	if !ok || rest == "" {
		return nil, usageError(config.UsageExport)
	}
	return Export{Target: t, Path: rest}, nil
}
