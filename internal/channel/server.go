package channel

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/breeze/internal/editor"
	"github.com/yaklabco/breeze/internal/logging"
	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/dom"
	"github.com/yaklabco/breeze/pkg/langdetect"
	"github.com/yaklabco/breeze/pkg/parser/html"
	"github.com/yaklabco/breeze/pkg/session"
)

// maxLineSize bounds one request line; buffers are sent whole.
const maxLineSize = 64 << 20

// jumpPrompt is sent with the marks of a jump request that has no key.
const jumpPrompt = "target: "

// ParserFactory creates the parser for a new buffer session from the
// filetype of its first request.
type ParserFactory func(filetype string) *html.Parser

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger. It must not write to the response stream.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithParserFactory overrides how buffer parsers are created.
func WithParserFactory(factory ParserFactory) Option {
	return func(s *Server) {
		s.newParser = factory
	}
}

// bufferState is the session and snapshot editor of one buffer.
type bufferState struct {
	editor  *editor.Buffer
	session *session.Session
	key     string
	hasKey  bool
}

// Server answers requests one at a time.
type Server struct {
	cfg       *config.Config
	logger    *log.Logger
	newParser ParserFactory
	validator *validator
	buffers   map[int]*bufferState
}

// NewServer creates a server using cfg for every session.
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	v, err := newValidator()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		validator: v,
		buffers:   make(map[int]*bufferState),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Default()
	}
	if s.newParser == nil {
		s.newParser = func(filetype string) *html.Parser {
			return session.NewParser(langdetect.Language(filetype), s.cfg)
		}
	}
	return s, nil
}

// Serve reads requests from r and writes one response line per request to
// w until r is exhausted or ctx is done.
//
// Reads from r are not interruptible: after ctx is done the reader
// goroutine stays blocked until r returns, so callers that need it gone
// close r (serve closes stdin by exiting).
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	enc := json.NewEncoder(w)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read request: %w", err)
					}
				default:
				}
				return nil
			}
			if len(line) == 0 {
				continue
			}
			if err := enc.Encode(s.HandleLine(line)); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
		}
	}
}

// HandleLine validates, decodes and handles one request line.
func (s *Server) HandleLine(line []byte) Response {
	if err := s.validator.validate(line); err != nil {
		var probe struct {
			ID int `json:"id"`
		}
		_ = json.Unmarshal(line, &probe)
		return Response{ID: probe.ID, Error: err.Error()}
	}

	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Response{Error: fmt.Sprintf("decode request: %v", err)}
	}
	return s.Handle(req)
}

// Handle runs one request against its buffer's session.
func (s *Server) Handle(req Request) Response {
	resp := Response{ID: req.ID}

	if req.Op == OpClose {
		delete(s.buffers, req.Buffer)
		s.logger.Debug("buffer closed", logging.FieldBuffer, req.Buffer, logging.FieldSessions, len(s.buffers))
		return resp
	}

	state := s.buffer(req.Buffer, req.Filetype)
	state.sync(req)
	before := state.editor.Cursor()

	s.logger.Debug("request",
		logging.FieldRequestID, req.ID,
		logging.FieldOp, req.Op,
		logging.FieldBuffer, req.Buffer,
		logging.FieldModified, req.Modified)

	err := s.dispatch(state, req, &resp)
	if err != nil {
		resp.Error = err.Error()
	}

	effects := state.editor.TakeEffects()
	resp.Clear = effects.Cleared
	resp.Messages = effects.Messages
	resp.Commands = effects.Commands
	for _, h := range effects.Highlights {
		resp.Highlights = append(resp.Highlights, Highlight{Group: h.Group, Pattern: h.Region.Pattern()})
	}
	if after := state.editor.Cursor(); after != before {
		resp.Cursor = &[2]int{after.Line, after.Column}
	}

	return resp
}

func (s *Server) dispatch(state *bufferState, req Request, resp *Response) error {
	sess := state.session

	switch req.Op {
	case OpInit:
		sess.Init()
		return nil
	case OpJumpForward, OpJumpBackward:
		backward := req.Op == OpJumpBackward
		if !state.hasKey {
			marks, err := sess.JumpMarks(backward)
			if err != nil {
				return err
			}
			for _, m := range marks {
				pos := m.Position()
				resp.Marks = append(resp.Marks, Mark{Label: m.Label, Cursor: [2]int{pos.Line, pos.Column}})
			}
			if len(marks) > 0 {
				resp.Prompt = jumpPrompt
			}
			return nil
		}
		if backward {
			return sess.JumpBackward()
		}
		return sess.JumpForward()
	case OpHighlightElement:
		return sess.HighlightCurrentElement()
	case OpHighlightBlock:
		return sess.HighlightElementBlock()
	case OpMatchTag:
		return sess.MatchTag()
	case OpNextSibling:
		return sess.GotoNextSibling()
	case OpPrevSibling:
		return sess.GotoPrevSibling()
	case OpFirstSibling:
		return sess.GotoFirstSibling()
	case OpLastSibling:
		return sess.GotoLastSibling()
	case OpFirstChild:
		return sess.GotoFirstChild()
	case OpLastChild:
		return sess.GotoLastChild()
	case OpParent:
		return sess.GotoParent()
	case OpPrintDOM:
		return sess.PrintDOM()
	case OpWhatsWrong:
		sess.WhatsWrong()
		return nil
	default:
		return fmt.Errorf("unknown op %q", req.Op)
	}
}

// buffer returns the state for a buffer number, creating it on first use.
func (s *Server) buffer(id int, filetype string) *bufferState {
	if state, ok := s.buffers[id]; ok {
		return state
	}

	state := &bufferState{}
	state.editor = editor.NewBuffer(nil, editor.WithKeyReader(func(string) (string, bool) {
		return state.key, state.hasKey
	}))
	state.session = session.New(state.editor, s.cfg,
		session.WithParser(s.newParser(filetype)),
		session.WithLogger(s.logger))
	s.buffers[id] = state

	s.logger.Debug("buffer opened",
		logging.FieldBuffer, id,
		logging.FieldLanguage, filetype,
		logging.FieldSessions, len(s.buffers))
	return state
}

// sync loads the request snapshot into the buffer's editor. It only ever
// raises the modified flag: a change left pending by an op that never
// parsed (init, whats-wrong) must still reach the next parsing op.
func (b *bufferState) sync(req Request) {
	// Resending identical lines keeps the cached tree.
	if req.Lines != nil && !slices.Equal(b.editor.Lines(), req.Lines) {
		b.editor.SetLines(req.Lines)
	}
	if req.Modified {
		b.editor.MarkModified()
	}
	if cursor := (dom.Position{Line: req.Cursor[0], Column: req.Cursor[1]}); cursor.IsValid() {
		b.editor.SetCursor(cursor)
	}
	b.editor.SetDarkBackground(req.Background == BackgroundDark)
	b.key, b.hasKey = req.Key, req.Key != ""
}

// Sessions returns the number of open buffer sessions.
func (s *Server) Sessions() int {
	return len(s.buffers)
}
