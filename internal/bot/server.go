package bot

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Handler answers one message.
type Handler interface {
	Handle(ctx context.Context, msg Message) Reply
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, msg Message) Reply

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, msg Message) Reply { return f(ctx, msg) }

// SendFunc delivers a reply. Server calls it from one goroutine per
// conversation and from Serve itself, so it must be safe for concurrent
// use.
type SendFunc func(msg Message, reply Reply)

// DefaultQueueSize is the number of pending messages per conversation.
const DefaultQueueSize = 16

// Server handles messages with one worker per conversation: messages of a
// chat are answered in arrival order, different chats concurrently.
//
// Serve never waits on a conversation. A message arriving while its chat
// already has a full queue is answered with the busy reply, or dropped
// when none is set, so one slow chat cannot hold up the others.
type Server struct {
	handler Handler
	send    SendFunc
	busy    func(Message) Reply
	log     *zap.Logger
	queue   int
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithQueueSize sets the number of pending messages per conversation.
func WithQueueSize(n int) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.queue = n
		}
	}
}

// WithBusyReply sets the answer to messages that find their chat's queue
// full.
func WithBusyReply(f func(Message) Reply) ServerOption {
	return func(s *Server) { s.busy = f }
}

// NewServer returns a Server that answers with h and delivers through send.
func NewServer(h Handler, send SendFunc, log *zap.Logger, opts ...ServerOption) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{handler: h, send: send, log: log.Named("server"), queue: DefaultQueueSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serve reads messages from in until in is closed or ctx is done, then
// waits for the workers. Queued messages are still answered after in
// closes and dropped after cancellation. It returns ctx.Err() when
// cancelled and nil when in was drained.
func (s *Server) Serve(ctx context.Context, in <-chan Message) error {
	var wg sync.WaitGroup
	chats := make(map[int64]chan Message)
	defer func() {
		for _, ch := range chats {
			close(ch)
		}
		wg.Wait()
		s.log.Debug("server stopped", zap.Int("conversations", len(chats)))
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-in:
			if !ok {
				return nil
			}
			ch, found := chats[msg.ChatID]
			if !found {
				ch = make(chan Message, s.queue)
				chats[msg.ChatID] = ch
				wg.Add(1)
				go s.converse(ctx, &wg, ch)
				s.log.Debug("conversation started", zap.Int64("chat_id", msg.ChatID))
			}
			select {
			case ch <- msg:
			default:
				s.overflow(msg)
			}
		}
	}
}

func (s *Server) overflow(msg Message) {
	s.log.Warn("conversation queue full", zap.Int64("chat_id", msg.ChatID), zap.Int("queue", s.queue))
	if s.busy != nil {
		s.send(msg, s.busy(msg))
	}
}

func (s *Server) converse(ctx context.Context, wg *sync.WaitGroup, ch <-chan Message) {
	defer wg.Done()
	for msg := range ch {
		if ctx.Err() != nil {
			continue
		}
		s.send(msg, s.handler.Handle(ctx, msg))
	}
}
