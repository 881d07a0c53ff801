package html

import (
	"sort"
	"strings"

	"github.com/yaklabco/breeze/pkg/dom"
)

//go:generate stringer -type=EventKind -trimprefix=Event

// EventKind classifies a scanner event.
type EventKind uint8

// Scanner event kinds.
const (
	EventText EventKind = iota
	EventOpen
	EventClose
)

// Event is a single tagging event produced by the scanner.
type Event struct {
	Kind EventKind

	// Name is the lower-cased tag name. Empty for text.
	Name string

	// Attrs is the raw attribute text of an opening tag.
	Attrs string

	// Raw is the literal source of the tag or text run.
	Raw string

	// Span covers the tag from '<' to '>' or the text run.
	Span dom.Span

	// SelfClosing is set for "/>" tags and void elements.
	SelfClosing bool
}

// voidElements never have a closing tag.
//
//nolint:gochecknoglobals // Read-only lookup table.
var voidElements = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,
}

// rawTextElements have bodies that are never scanned for tags.
//
//nolint:gochecknoglobals // Read-only lookup table.
var rawTextElements = map[string]bool{
	"script":   true,
	"style":    true,
	"textarea": true,
	"title":    true,
	"xmp":      true,
}

// IsVoidElement returns true if tag never has a closing tag.
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// scanner performs a single pass over the buffer content.
type scanner struct {
	content    string
	lineStarts []int
	pos        int
	events     []Event
}

// Scan tokenizes buffer lines into tagging events.
// On lexically unrecoverable input it returns the events scanned so far
// together with a *ScanError.
func Scan(lines []string) ([]Event, error) {
	content := strings.Join(lines, "\n")
	if content == "" {
		return nil, nil
	}

	const eventsPerByte = 16 // rough capacity estimate
	s := &scanner{
		content:    content,
		lineStarts: lineStarts(lines),
		events:     make([]Event, 0, len(content)/eventsPerByte),
	}

	err := s.scan()
	return s.events, err
}

// lineStarts returns the byte offset of each line in the joined content.
func lineStarts(lines []string) []int {
	starts := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		starts[i] = offset
		offset += len(line) + 1
	}
	return starts
}

// position converts a byte offset to a buffer position.
func (s *scanner) position(offset int) dom.Position {
	idx := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return dom.Position{Line: idx + 1, Column: offset - s.lineStarts[idx]}
}

// sourceLine returns the text of the line containing offset.
func (s *scanner) sourceLine(offset int) string {
	pos := s.position(offset)
	start := s.lineStarts[pos.Line-1]
	end := strings.IndexByte(s.content[start:], '\n')
	if end < 0 {
		return s.content[start:]
	}
	return s.content[start : start+end]
}

func (s *scanner) fail(kind error, offset int) error {
	pos := s.position(offset)
	return &ScanError{
		Kind:   kind,
		Line:   pos.Line,
		Column: pos.Column,
		Source: s.sourceLine(offset),
	}
}

func (s *scanner) emit(event Event, start, end int) {
	event.Raw = s.content[start:end]
	event.Span = dom.Span{Start: s.position(start), End: s.position(end - 1)}
	s.events = append(s.events, event)
}

func (s *scanner) scan() error {
	textStart := 0
	for s.pos < len(s.content) {
		next := strings.IndexByte(s.content[s.pos:], '<')
		if next < 0 {
			break
		}
		s.pos += next

		tagStart := s.pos
		event, consumed, err := s.scanMarkup()
		if err != nil {
			return err
		}
		if !consumed {
			// A lone '<' is ordinary text.
			s.pos++
			continue
		}

		if tagStart > textStart {
			s.emit(Event{Kind: EventText}, textStart, tagStart)
		}
		textStart = s.pos
		if event != nil {
			s.emit(*event, tagStart, s.pos)
			if event.Kind == EventOpen && rawTextElements[event.Name] && !event.SelfClosing {
				s.skipRawText(event.Name)
			}
		}
	}

	if textStart < len(s.content) {
		s.emit(Event{Kind: EventText}, textStart, len(s.content))
	}
	return nil
}

// scanMarkup handles the construct starting at the '<' under s.pos and
// leaves s.pos just past it. Comments and declarations are consumed
// without an event. It returns consumed == false if the '<' does not
// start markup.
func (s *scanner) scanMarkup() (*Event, bool, error) {
	rest := s.content[s.pos:]

	switch {
	case strings.HasPrefix(rest, "<!--"):
		end := strings.Index(rest[len("<!--"):], "-->")
		if end < 0 {
			return nil, false, s.fail(ErrUnterminatedComment, s.pos)
		}
		s.pos += len("<!--") + end + len("-->")
		return nil, true, nil

	case strings.HasPrefix(rest, "<!"), strings.HasPrefix(rest, "<?"):
		// Doctype, CDATA, processing instructions and bogus comments.
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			s.pos = len(s.content)
		} else {
			s.pos += end + 1
		}
		return nil, true, nil

	case strings.HasPrefix(rest, "</"):
		if len(rest) < 3 || !isNameStart(rest[2]) {
			return nil, false, nil
		}
		event, err := s.scanEndTag()
		return event, true, err

	case len(rest) > 1 && isNameStart(rest[1]):
		event, err := s.scanStartTag()
		return event, true, err

	default:
		return nil, false, nil
	}
}

func (s *scanner) scanEndTag() (*Event, error) {
	start := s.pos
	nameStart := start + len("</")
	nameEnd := s.scanName(nameStart)

	end := strings.IndexByte(s.content[nameEnd:], '>')
	if end < 0 {
		return nil, s.fail(ErrMalformedEndTag, start)
	}
	s.pos = nameEnd + end + 1

	return &Event{
		Kind: EventClose,
		Name: strings.ToLower(s.content[nameStart:nameEnd]),
	}, nil
}

func (s *scanner) scanStartTag() (*Event, error) {
	start := s.pos
	nameStart := start + 1
	nameEnd := s.scanName(nameStart)
	name := strings.ToLower(s.content[nameStart:nameEnd])

	s.pos = nameEnd
	selfClosing, err := s.scanAttributes(start)
	if err != nil {
		return nil, err
	}

	attrsEnd := s.pos - len(">")
	if selfClosing {
		attrsEnd = s.pos - len("/>")
	}
	if attrsEnd < nameEnd {
		attrsEnd = nameEnd
	}

	return &Event{
		Kind:        EventOpen,
		Name:        name,
		Attrs:       strings.TrimSpace(s.content[nameEnd:attrsEnd]),
		SelfClosing: selfClosing || voidElements[name],
	}, nil
}

// scanAttributes consumes attributes up to and including the closing '>'.
// It reports whether the tag ended with "/>".
func (s *scanner) scanAttributes(tagStart int) (bool, error) {
	for s.pos < len(s.content) {
		ch := s.content[s.pos]
		switch {
		case ch == '>':
			s.pos++
			return false, nil
		case ch == '/' && s.pos+1 < len(s.content) && s.content[s.pos+1] == '>':
			s.pos += 2
			return true, nil
		case isSpace(ch) || ch == '/':
			s.pos++
		default:
			if err := s.scanAttribute(); err != nil {
				return false, err
			}
		}
	}
	return false, s.fail(ErrMalformedStartTag, tagStart)
}

// scanAttribute consumes one name[=value] pair.
func (s *scanner) scanAttribute() error {
	for s.pos < len(s.content) {
		ch := s.content[s.pos]
		if isSpace(ch) || ch == '=' || ch == '>' || ch == '/' {
			break
		}
		s.pos++
	}

	// Optional whitespace around '='.
	valueStart := s.pos
	for valueStart < len(s.content) && isSpace(s.content[valueStart]) {
		valueStart++
	}
	if valueStart >= len(s.content) || s.content[valueStart] != '=' {
		return nil
	}
	s.pos = valueStart + 1
	for s.pos < len(s.content) && isSpace(s.content[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.content) {
		return nil
	}

	switch quote := s.content[s.pos]; quote {
	case '"', '\'':
		end := strings.IndexByte(s.content[s.pos+1:], quote)
		if end < 0 {
			return s.fail(ErrUnterminatedAttribute, s.pos)
		}
		s.pos += end + 2
	default:
		for s.pos < len(s.content) && !isSpace(s.content[s.pos]) && s.content[s.pos] != '>' {
			s.pos++
		}
	}
	return nil
}

// skipRawText moves past the body of a raw-text element, stopping at its
// closing tag. An unterminated body runs to the end of the buffer.
func (s *scanner) skipRawText(name string) {
	lower := strings.ToLower(s.content[s.pos:])
	needle := "</" + name
	offset := 0
	for {
		idx := strings.Index(lower[offset:], needle)
		if idx < 0 {
			s.pos = len(s.content)
			return
		}
		after := offset + idx + len(needle)
		if after >= len(lower) || isSpace(lower[after]) || lower[after] == '>' || lower[after] == '/' {
			s.pos += offset + idx
			return
		}
		offset = after
	}
}

func (s *scanner) scanName(from int) int {
	end := from
	for end < len(s.content) {
		ch := s.content[end]
		if isSpace(ch) || ch == '>' || ch == '/' {
			break
		}
		end++
	}
	return end
}

func isNameStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}
