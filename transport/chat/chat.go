// Package chat is the websocket client for the concierge chatbot. One
// connection per session: prompts go out as JSON frames, responses come back
// on a channel the UI ranges over.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"innsync/config"
	"innsync/shared/constant"
	"innsync/shared/failure"
	"innsync/transport/rest"
)

// Envelope is one chatbot response. Data carries an optional structured
// payload (hotel cards, booking summaries), Action tells the UI what to render
// and Text is the plain reply.
type Envelope struct {
	Data   json.RawMessage `json:"data"`
	Action string          `json:"action"`
	Text   string          `json:"text"`
}

type frame struct {
	Event   string          `json:"event"`
	ID      string          `json:"id,omitempty"`
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Action  string          `json:"action,omitempty"`
	Text    string          `json:"text,omitempty"`
}

type Client interface {
	Connect(ctx context.Context) error
	Send(message string) error
	Responses() <-chan Envelope
	Close()
}

type clientImpl struct {
	endpoint string
	tokens   rest.TokenSource

	mu        sync.Mutex
	conn      *websocket.Conn
	responses chan Envelope
}

func New(cfg *config.Config, tokens rest.TokenSource) (Client, error) {
	endpoint, err := wsEndpoint(cfg.API.BaseURL, cfg.API.ChatNamespace)
	if err != nil {
		return nil, err
	}

	return &clientImpl{
		endpoint:  endpoint,
		tokens:    tokens,
		responses: make(chan Envelope, 16),
	}, nil
}

func wsEndpoint(base, namespace string) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return constant.Empty, fmt.Errorf("parsing API base URL: %w", err)
	}

	switch parsed.Scheme {
	case "https":
		parsed.Scheme = "wss"
	default:
		parsed.Scheme = "ws"
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + namespace

	return parsed.String(), nil
}

// Connect dials the chat namespace and starts the reader loop. Calling it on
// an already connected client is a no-op.
func (c *clientImpl) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return failure.RemoteUnreachable(fmt.Errorf("dialing chat endpoint: %w", err)) // nolint:wrapcheck
	}

	if resp != nil && resp.Body != nil {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close handshake response body")
		}
	}

	c.conn = conn

	go c.readLoop(conn)

	return nil
}

func (c *clientImpl) readLoop(conn *websocket.Conn) {
	for {
		var f frame

		if err := conn.ReadJSON(&f); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error().Err(err).Msg("chat connection closed unexpectedly")
			}

			c.mu.Lock()
			if c.conn == conn {
				c.conn = nil
			}
			c.mu.Unlock()

			return
		}

		if f.Event != constant.ChatEventPromptResponse {
			continue
		}

		envelope := Envelope{Data: f.Data, Action: f.Action, Text: f.Text}

		select {
		case c.responses <- envelope:
		default:
			log.Warn().Msg("dropping chat response, consumer is not keeping up")
		}
	}
}

// Send emits one prompt with the current session token attached.
func (c *clientImpl) Send(message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return failure.RemoteUnreachable(fmt.Errorf("chat is not connected")) // nolint:wrapcheck
	}

	f := frame{
		Event:   constant.ChatEventPrompt,
		ID:      uuid.NewString(),
		Message: message,
		Token:   c.tokens.Token(),
	}

	if err := c.conn.WriteJSON(f); err != nil {
		return failure.RemoteUnreachable(fmt.Errorf("sending prompt: %w", err)) // nolint:wrapcheck
	}

	return nil
}

func (c *clientImpl) Responses() <-chan Envelope {
	return c.responses
}

func (c *clientImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, constant.Empty)
	if err := c.conn.WriteMessage(websocket.CloseMessage, closeMsg); err != nil {
		log.Debug().Err(err).Msg("failed to send close frame")
	}

	if err := c.conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close chat connection")
	}

	c.conn = nil
}
