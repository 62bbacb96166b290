// Package client implements the console chat client: local commands,
// forwarding of server commands and the server's control lines.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/fsbteam/chat/internal/command"
	"github.com/fsbteam/chat/internal/log"
	"github.com/fsbteam/chat/internal/server"
)

// DefaultAddress is dialed by /connect without an address.
const DefaultAddress = "localhost:7777"

const dialTimeout = 5 * time.Second

const msgNotConnected = "You are not connected. Use /connect [address]."

// ErrNotConnected is returned when writing without a connection.
var ErrNotConnected = errors.New("not connected")

// Dialer opens the connection to a server.
type Dialer func(ctx context.Context, address string) (net.Conn, error)

// Client owns the connection and two command processors: input for what
// the user types, control for the lines the server sends. Input runs on
// the caller's goroutine, serialized, control on the connection reader.
type Client struct {
	address    string
	clientType string
	dial       Dialer
	log        *log.Logger

	input   *command.Processor[*Client]
	control *command.Processor[*Client]
	events  chan Event

	// inputMu serializes HandleInput; the input processor is single-use.
	inputMu sync.Mutex

	mu      sync.Mutex
	conn    net.Conn
	w       *bufio.Writer
	pending *confirmation
}

// confirmation is a /ask waiting for the user's Y/n.
type confirmation struct {
	reply string
}

// Option configures a Client.
type Option func(*Client)

// WithAddress sets the address /connect dials by default.
func WithAddress(address string) Option {
	return func(c *Client) {
		if address != "" {
			c.address = address
		}
	}
}

// WithDialer replaces the TCP dialer.
func WithDialer(d Dialer) Option {
	return func(c *Client) { c.dial = d }
}

// WithClientType sets what the client reports in the handshake.
func WithClientType(t string) Option {
	return func(c *Client) {
		if t != "" {
			c.clientType = t
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.log = l.Named("client") }
}

// New creates a disconnected client.
func New(opts ...Option) *Client {
	c := &Client{
		address:    DefaultAddress,
		clientType: server.ClientConsole,
		events:     make(chan Event, 256),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.dial == nil {
		d := &net.Dialer{Timeout: dialTimeout}
		c.dial = func(ctx context.Context, address string) (net.Conn, error) {
			return d.DialContext(ctx, "tcp", address)
		}
	}

	c.input = command.NewProcessor[*Client]()
	registerInput(c.input)
	c.control = command.NewProcessor[*Client]()
	registerControl(c.control)
	return c
}

// Events delivers everything the user should see, in order.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Commands returns the input processor, for completion and help.
func (c *Client) Commands() *command.Processor[*Client] {
	return c.input
}

func (c *Client) emit(e Event) {
	c.events <- e
}

func (c *Client) notice(format string, args ...any) {
	c.emit(Event{Kind: EventNotice, Text: fmt.Sprintf(format, args...)})
}

// emitOutput turns a processor's output buffer into notice events.
func (c *Client) emitOutput(out string) {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return
	}
	for _, line := range strings.Split(out, "\n") {
		c.emit(Event{Kind: EventNotice, Text: line})
	}
}

// Connected reports whether a server connection is open.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Connect dials address and starts reading server lines.
func (c *Client) Connect(ctx context.Context, address string) error {
	if address == "" {
		address = c.address
	}

	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		return errors.New("already connected")
	}
	c.mu.Unlock()

	conn, err := c.dial(ctx, address)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", address, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.w = bufio.NewWriter(conn)
	c.pending = nil
	c.mu.Unlock()

	c.log.Info("connected to %s", address)
	c.emit(Event{Kind: EventConnected, Text: address})
	go c.read(conn)
	return nil
}

// Disconnect closes the connection; the reader reports EventDisconnected.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

func (c *Client) read(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 64*1024)
	for scanner.Scan() {
		c.HandleServerLine(strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		c.log.Debug("read: %v", err)
	}

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
		c.w = nil
		c.pending = nil
	}
	c.mu.Unlock()

	c.log.Info("disconnected")
	c.emit(Event{Kind: EventDisconnected})
}

// Send writes one line to the server.
func (c *Client) Send(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.w == nil {
		return ErrNotConnected
	}
	if _, err := c.w.WriteString(line + "\n"); err != nil {
		return err
	}
	return c.w.Flush()
}

func (c *Client) setPending(p *confirmation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = p
}

func (c *Client) takePending() *confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.pending
	c.pending = nil
	return p
}

// HandleInput processes one line typed by the user. Calls from several
// goroutines run one at a time, in lock order.
func (c *Client) HandleInput(line string) {
	c.inputMu.Lock()
	defer c.inputMu.Unlock()

	if p := c.takePending(); p != nil {
		c.answer(p, line)
		return
	}

	err := c.input.Execute(line, c)
	if err == nil {
		c.emitOutput(c.input.Output())
		return
	}

	switch err.Kind {
	case command.PhantomCommand:
		c.forward(line)
	case command.NotACommand:
		if strings.TrimSpace(line) == "" {
			return
		}
		c.forward(line)
	case command.CommandNotFound:
		name := err.Line[err.Start:err.End]
		c.emit(Event{Kind: EventError, Err: err})
		if names := c.input.Suggest(name, 3); len(names) > 0 {
			c.notice("Did you mean %s?", joinCommands(names))
		}
	default:
		c.emit(Event{Kind: EventError, Err: err})
	}
}

func (c *Client) forward(line string) {
	err := c.Send(line)
	if errors.Is(err, ErrNotConnected) {
		c.notice(msgNotConnected)
		return
	}
	if err != nil {
		c.log.Warn("send: %v", err)
		c.notice("Failed to send: %v", err)
	}
}

func (c *Client) answer(p *confirmation, line string) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		c.forward(p.reply)
	default:
		c.notice("Cancelled.")
	}
}

// HandleServerLine processes one line received from the server.
func (c *Client) HandleServerLine(line string) {
	if strings.HasPrefix(line, command.Marker) {
		if err := c.control.Execute(line, c); err == nil {
			c.emitOutput(c.control.Output())
			return
		}
		// not a control line we know; show it as sent
		c.emit(Event{Kind: EventNotice, Text: line})
		return
	}
	c.emit(classify(line))
}

// classify tells own chat lines, other chat lines and notices apart.
// Chat lines start with "[" after the optional self marker.
func classify(line string) Event {
	if rest, ok := strings.CutPrefix(line, server.SelfMarker); ok {
		return Event{Kind: EventSelf, Text: rest}
	}
	if strings.HasPrefix(line, "[") {
		return Event{Kind: EventChat, Text: line}
	}
	return Event{Kind: EventNotice, Text: line}
}

func joinCommands(names []string) string {
	for i, n := range names {
		names[i] = command.Marker + n
	}
	return strings.Join(names, ", ")
}
