// File: websocket.go
// Title: WebSocket Source
// Description: Publishes the data messages of a gorilla/websocket connection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stream

import (
	"context"
	"errors"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/msto63/gopress/core/log"
)

// Message is a websocket data frame
type Message struct {
	Type int // websocket.TextMessage or websocket.BinaryMessage
	Data []byte
}

// Text returns the payload as a string
func (m Message) Text() string {
	return string(m.Data)
}

// FromWebSocket publishes every message read from conn. Reading starts with
// the first subscription; later subscribers only see later messages. The
// publisher completes when the peer closes, a read fails or ctx is done, in
// which case conn is closed.
func FromWebSocket(ctx context.Context, conn *websocket.Conn) Publisher[Message] {
	subject := NewSubject[Message]()
	logger := log.GetDefault().WithName("stream")
	var once sync.Once

	return PublisherFunc[Message](func(sub Subscriber[Message]) Cancellable {
		c := subject.Subscribe(sub)
		once.Do(func() {
			go readMessages(ctx, conn, subject, logger)
		})
		return c
	})
}

func readMessages(ctx context.Context, conn *websocket.Conn, subject *Subject[Message], logger *log.Logger) {
	defer subject.Complete()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	remote := log.Field("remote", conn.RemoteAddr().String())
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			switch {
			case ctx.Err() != nil:
				logger.Debug("websocket source cancelled", remote)
			case errors.As(err, &closeErr) && !websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
				logger.Debug("websocket closed", remote.Merge(log.Field("code", closeErr.Code)))
			default:
				logger.WarnWithErr("websocket read error", err, remote)
			}
			return
		}
		subject.Send(Message{Type: messageType, Data: data})
	}
}
