package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// stageEvent is the payload pushed to dashboard clients when an assessment
// changes stage.
type stageEvent struct {
	AssessmentID string `json:"assessment_id"`
	From         string `json:"from"`
	To           string `json:"to"`
	At           string `json:"at"`
}

// Broadcaster fans stage-change events out to connected dashboard clients
// over Server-Sent Events. Slow clients are skipped rather than blocking the
// write path; the dashboard count endpoints remain the source of truth.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan stageEvent]struct{}
}

var _ interfaces.IStageNotifier = (*Broadcaster)(nil)

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan stageEvent]struct{})}
}

func (b *Broadcaster) StageChanged(assessmentID string, from, to entities.AssessmentStage) {
	evt := stageEvent{
		AssessmentID: assessmentID,
		From:         string(from),
		To:           string(to),
		At:           time.Now().UTC().Format(time.RFC3339),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- evt:
		default:
			log.Printf("[dashboard][sse] dropping stage event for slow subscriber")
		}
	}
}

func (b *Broadcaster) subscribe() chan stageEvent {
	ch := make(chan stageEvent, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broadcaster) unsubscribe(ch chan stageEvent) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Handler streams stage-change events to the client until it disconnects.
func (b *Broadcaster) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")

		writeSSE(c.Writer, "connected", map[string]string{"type": "connected"})
		c.Writer.Flush()

		ch := b.subscribe()
		defer b.unsubscribe(ch)

		ctx := c.Request.Context()
		heartbeat := time.NewTicker(15 * time.Second)
		defer heartbeat.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-heartbeat.C:
				writeSSE(c.Writer, "heartbeat", map[string]string{
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				})
				c.Writer.Flush()
			case evt := <-ch:
				writeSSE(c.Writer, "stage_changed", evt)
				c.Writer.Flush()
			}
		}
	}
}

// writeSSE writes a single SSE event to the writer.
func writeSSE(w io.Writer, event string, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, string(jsonData))
}
