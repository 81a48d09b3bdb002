// Command ropewatch polls a text file for changes and pushes a diff of each
// change to every connected websocket client, formatted as JSON.
//
// It has no filesystem-event dependency wired (none of the retrieved stack
// carries one), so it polls the file's modification time on a fixed
// interval instead of subscribing to OS-level change notifications — see
// DESIGN.md for why this was the chosen tradeoff.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ropecore/rope/pkg/rope"
)

type diffMessage struct {
	Seq       int    `json:"seq"`
	Timestamp string `json:"timestamp"`
	Diff      string `json:"diff"`
	Length    int    `json:"length"`
}

type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *hub) add(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

func (h *hub) remove(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	c.Close()
}

func (h *hub) broadcast(msg diffMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if err := c.WriteJSON(msg); err != nil {
			log.Printf("ropewatch: dropping client after write error: %v", err)
			delete(h.clients, c)
			c.Close()
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func main() {
	var (
		addr     = flag.String("addr", ":8642", "address to serve the websocket feed on")
		path     = flag.String("file", "", "file to watch")
		interval = flag.Duration("interval", 500*time.Millisecond, "poll interval")
	)
	flag.Parse()

	if *path == "" {
		log.Fatal("ropewatch: -file is required")
	}

	h := newHub()

	http.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("ropewatch: upgrade failed: %v", err)
			return
		}
		h.add(conn)
		log.Printf("ropewatch: client connected (%d total)", len(h.clients))

		go func() {
			defer h.remove(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	})

	go watchFile(*path, *interval, h)

	log.Printf("ropewatch: serving ws://%s/watch, watching %s", *addr, *path)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func watchFile(path string, interval time.Duration, h *hub) {
	current, err := loadRope(path)
	if err != nil {
		log.Fatalf("ropewatch: initial read of %s: %v", path, err)
	}

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	seq := 0
	for range time.Tick(interval) {
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("ropewatch: stat %s: %v", path, err)
			continue
		}
		if !info.ModTime().After(lastMod) {
			continue
		}
		lastMod = info.ModTime()

		next, err := loadRope(path)
		if err != nil {
			log.Printf("ropewatch: reload %s: %v", path, err)
			continue
		}
		if next.HashEquals(current) {
			continue
		}

		seq++
		msg := diffMessage{
			Seq:       seq,
			Timestamp: lastMod.UTC().Format(time.RFC3339Nano),
			Diff:      rope.DiffText(current, next),
			Length:    next.Length(),
		}
		h.broadcast(msg)
		current = next
	}
}

func loadRope(path string) (*rope.Rope, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rope.FromReader(f)
}
