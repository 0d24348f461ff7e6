package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/jfcardenas/inventra/pkg/logger"
)

// StockEvent mensaje difundido a los clientes cuando cambia el stock de un producto.
type StockEvent struct {
	Type      string    `json:"type"` // "stock_changed"
	ProductID string    `json:"product_id"`
	Stock     int64     `json:"stock"`
	At        time.Time `json:"at"`
}

// Hub mantiene los clientes websocket conectados y difunde eventos de stock.
// Run debe ejecutarse en su propia goroutine.
type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	log        *logger.Logger
	mu         sync.Mutex
}

// NewHub construye el hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 64),
		log:        log,
	}
}

// Run atiende registros, bajas y difusión hasta que el proceso termina.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			h.log.Debug().Msg("cliente websocket conectado")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register encola la conexión para ser atendida por Run.
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister retira la conexión y la cierra.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// PublishStockChanged implementa inventory.StockPublisher: difunde el nuevo
// stock de un producto a todos los clientes. No bloquea al caller si el
// buffer está lleno; el evento se descarta y se registra un warning.
func (h *Hub) PublishStockChanged(productID string, stock int64) {
	msg, err := json.Marshal(StockEvent{
		Type:      "stock_changed",
		ProductID: productID,
		Stock:     stock,
		At:        time.Now(),
	})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn().Str("product_id", productID).Msg("buffer de difusión lleno, evento de stock descartado")
	}
}
