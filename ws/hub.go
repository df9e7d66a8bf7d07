package ws

// Hub bertanggung jawab untuk:
// - menyimpan koneksi client (dashboard keluarga / caregiver),
// - menerima event dari service (note baru, shift dimulai),
// - broadcast event ke seluruh client yang terhubung.

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

// Tipe event.
const (
	EventNoteRecorded = "note_recorded"
	EventNoteEdited   = "note_edited"
	EventNoteDeleted  = "note_deleted"
	EventShiftRecord  = "shift_record_saved"
	EventShiftStarted = "shift_started"
	EventAppointment  = "appointment_added"
)

type Event struct {
	Type        string      `json:"type"`
	PatientName string      `json:"patient_name,omitempty"`
	Payload     interface{} `json:"payload,omitempty"`
	At          string      `json:"at"`
}

// Publisher dipakai service untuk mengirim event tanpa bergantung pada Hub secara langsung.
type Publisher interface {
	Publish(ev Event)
}

// Client mewakili koneksi WebSocket
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mengelola semua koneksi client
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run memproses register/unregister/broadcast sampai ctx selesai.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for client := range h.Clients {
				close(client.Send)
				delete(h.Clients, client)
			}
			return
		case client := <-h.Register:
			h.Clients[client] = true
			h.logger.Debug("client registered", "clients", len(h.Clients))
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				h.logger.Debug("client unregistered", "clients", len(h.Clients))
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					// client lambat: putuskan
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}

// Publish meng-encode event dan mengantrikannya untuk broadcast.
// Jika antrian penuh event dibuang supaya request HTTP tidak tertahan.
func (h *Hub) Publish(ev Event) {
	if ev.At == "" {
		ev.At = time.Now().UTC().Format(time.RFC3339)
	}
	msg, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("gagal encode event", "type", ev.Type, "error", err)
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		h.logger.Warn("antrian broadcast penuh, event dibuang", "type", ev.Type)
	}
}
