package server

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/log"
)

// Client types reported through /response type.
const (
	ClientConsole = "console"
	ClientGUI     = "gui"
)

// Line the server sends right after accepting a connection.
const requestTypeLine = "/request type"

const maxLineBytes = 64 * 1024

// Session is one client connection. Its processor runs only on the
// session's read goroutine; other goroutines talk to it through Send.
type Session struct {
	ID string

	server  *Server
	conn    net.Conn
	proc    *command.Processor[*Session]
	limiter *rate.Limiter
	log     *log.Logger

	writeMu sync.Mutex
	w       *bufio.Writer

	stateMu    sync.RWMutex
	user       *domain.User
	group      *domain.Group
	clientType string

	closeOnce sync.Once
}

func newSession(srv *Server, conn net.Conn) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:         id,
		server:     srv,
		conn:       conn,
		limiter:    rate.NewLimiter(srv.cfg.RateLimit, srv.cfg.RateBurst),
		log:        srv.log.Named("session").Named(id[:8]),
		w:          bufio.NewWriter(conn),
		clientType: ClientConsole,
	}
	s.proc = command.NewProcessor[*Session]()
	RegisterCommands(s.proc)
	return s
}

// Store returns the chat store shared by all sessions.
func (s *Session) Store() domain.ChatStore {
	return s.server.store
}

// Hub returns the registry of online sessions.
func (s *Session) Hub() *Hub {
	return s.server.hub
}

// User returns the logged-in account.
func (s *Session) User() (domain.User, bool) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *Session) setUser(u *domain.User) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.user = u
	if u == nil {
		s.group = nil
	}
}

// Group returns the open group.
func (s *Session) Group() (domain.Group, bool) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.group == nil {
		return domain.Group{}, false
	}
	return *s.group, true
}

func (s *Session) setGroup(g *domain.Group) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.group = g
}

// ClientType returns the kind of client reported in the handshake.
func (s *Session) ClientType() string {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.clientType
}

func (s *Session) setClientType(t string) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.clientType = t
}

// Send writes text to the client, one protocol line per text line.
func (s *Session) Send(text string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if _, err := s.w.WriteString(line + "\n"); err != nil {
			s.log.Debug("write failed: %v", err)
			return
		}
	}
	if err := s.w.Flush(); err != nil {
		s.log.Debug("flush failed: %v", err)
	}
}

// Close disconnects the client. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
}

func (s *Session) run(ctx context.Context) {
	defer s.Close()
	stop := context.AfterFunc(ctx, s.Close)
	defer stop()

	s.log.Info("connected from %s", s.conn.RemoteAddr())
	s.Send(requestTypeLine)

	scanner := bufio.NewScanner(s.conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		s.handleLine(strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		s.log.Debug("read: %v", err)
	}

	if u, ok := s.User(); ok {
		s.log.Info("%s disconnected", u.Username)
	} else {
		s.log.Info("disconnected")
	}
}

// handleLine runs command lines through the session processor and
// treats anything else as a chat message.
func (s *Session) handleLine(line string) {
	if line == "" {
		return
	}
	if !strings.HasPrefix(line, command.Marker) {
		s.chat(line)
		return
	}

	if err := s.proc.Execute(line, s); err != nil {
		if err.Kind == command.NotACommand {
			// "/" alone and "//..." are plain text
			s.chat(line)
			return
		}
		s.log.Debug("command rejected: %s", err.Kind)
		s.Send(err.Error())
		return
	}
	if out := s.proc.Output(); out != "" {
		s.Send(out)
	}
}

// chat stores a message in the open group and delivers it to every
// session that has the group open.
func (s *Session) chat(body string) {
	user, ok := s.User()
	if !ok {
		s.Send(msgNotLoggedIn)
		return
	}
	group, ok := s.Group()
	if !ok {
		s.Send(msgNoGroup)
		return
	}
	if !s.limiter.Allow() {
		s.Send(msgTooFast)
		return
	}

	msg, err := s.Store().AppendMessage(group.ID, user.ID, body)
	if err != nil {
		s.log.Error("append message to %s: %v", group.Groupname, err)
		s.Send(msgSomethingWrong)
		return
	}

	mode := s.server.cfg.ClockMode
	s.Hub().SendToGroup(group.ID, func(to *Session) string {
		u, _ := to.User()
		return chatLine(msg, u.ID == user.ID, mode)
	})
}
