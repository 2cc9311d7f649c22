package server

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/morphic-dev/morphic/pkg/component"
	"github.com/morphic-dev/morphic/pkg/dom"
	"github.com/morphic-dev/morphic/pkg/middleware"
	"github.com/morphic-dev/morphic/pkg/morph"
	"github.com/morphic-dev/morphic/pkg/protocol"
)

// Session is one live document driven over a WebSocket connection. All
// event dispatch and patch emission for a session is serialized under its
// mutex; separate sessions run concurrently.
type Session struct {
	// ID is the session's unique identifier.
	ID string

	doc  *dom.Document
	root *dom.Node
	rec  *morph.Recorder

	conn   *websocket.Conn
	config *Config
	logger *slog.Logger

	mu        sync.Mutex
	seq       uint64
	lastStats morph.Stats
	closed    bool

	onClose func(*Session)
}

// newSession builds a fresh document, mounts the root component into it,
// and wires the patch recorder through the component layer.
func newSession(conn *websocket.Conn, cfg *Config, root RootFunc, onClose func(*Session)) *Session {
	id := uuid.NewString()
	doc := dom.NewDocument()
	host := root(doc)

	rec := morph.NewPatchRecorder()
	if c, ok := component.ControllerOf(host); ok {
		c.SetRecorder(rec)
	}
	component.Mount(doc.Root(), host)

	s := &Session{
		ID:      id,
		doc:     doc,
		root:    host,
		rec:     rec,
		conn:    conn,
		config:  cfg,
		logger:  cfg.Logger.With("session", id),
		onClose: onClose,
	}

	// The initial render happened during Mount; the client already has
	// that HTML, so the patch log up to here is dropped.
	rec.Take()
	s.lastStats = rec.Stats()

	middleware.RecordSessionCreate()
	return s
}

// Document returns the session's live document.
func (s *Session) Document() *dom.Document { return s.doc }

// Root returns the mounted root component host.
func (s *Session) Root() *dom.Node { return s.root }

// HandleEvent applies one client event to the live tree and flushes the
// resulting patches to the client.
func (s *Session) HandleEvent(ctx context.Context, ev *protocol.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, finish := middleware.TraceEvent(ctx, ev.Type, s.ID)
	start := time.Now()

	patches, err := s.dispatch(ev)
	finish(patches, err)
	middleware.RecordEvent(ev.Type, time.Since(start), err)
	return err
}

func (s *Session) dispatch(ev *protocol.Event) (int, error) {
	node, ok := resolveTarget(s.doc, ev.Target)
	if !ok {
		return 0, ErrUnknownTarget(ev.Target)
	}

	// Input-carrying events update the control's live value before the
	// handler sees the event, matching what the client's DOM already did.
	switch ev.Type {
	case "input", "change":
		node.Focus()
		node.SetValue(ev.Value)
	}

	node.Dispatch(dom.Event{Type: ev.Type, Target: node, Detail: ev.Value})
	return s.flush()
}

// flush drains the patch log and sends it as one frame. A cycle that
// mutated nothing sends nothing.
func (s *Session) flush() (int, error) {
	patches := s.rec.Take()

	stats := s.rec.Stats()
	middleware.RecordMorph(diffStats(s.lastStats, stats))
	s.lastStats = stats

	if len(patches) == 0 {
		return 0, nil
	}

	s.seq++
	data, err := protocol.EncodeFrame(&protocol.Frame{Seq: s.seq, Patches: patches})
	if err != nil {
		return 0, err
	}

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		middleware.RecordWebSocketError("write")
		return 0, err
	}

	middleware.RecordPatches(len(patches))
	return len(patches), nil
}

// Close tears down the session: the root component unmounts and the
// connection closes. Safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	component.Unmount(s.root)
	s.conn.Close()
	middleware.RecordSessionDestroy()

	if s.onClose != nil {
		s.onClose(s)
	}
}

// resolveTarget resolves a patch-style address against the document:
// "#id" looks up by element ID, anything else is a dot-separated child
// index path from the root.
func resolveTarget(doc *dom.Document, target string) (*dom.Node, bool) {
	if target == "" {
		return nil, false
	}
	if strings.HasPrefix(target, "#") {
		return doc.GetElementByID(target[1:])
	}

	n := doc.Root()
	for _, part := range strings.Split(target, ".") {
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		children := n.Children()
		if idx < 0 || idx >= len(children) {
			return nil, false
		}
		n = children[idx]
	}
	return n, true
}

func diffStats(prev, cur morph.Stats) morph.Stats {
	return morph.Stats{
		Inserts:      cur.Inserts - prev.Inserts,
		Removes:      cur.Removes - prev.Removes,
		Moves:        cur.Moves - prev.Moves,
		TextPatches:  cur.TextPatches - prev.TextPatches,
		AttrWrites:   cur.AttrWrites - prev.AttrWrites,
		AttrRemoves:  cur.AttrRemoves - prev.AttrRemoves,
		StyleWrites:  cur.StyleWrites - prev.StyleWrites,
		StyleRemoves: cur.StyleRemoves - prev.StyleRemoves,
		ValueWrites:  cur.ValueWrites - prev.ValueWrites,
	}
}
