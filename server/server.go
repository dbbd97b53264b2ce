// Package server exposes a printer on a TCP port, JetDirect style: raw
// ESC/POS bytes received from clients are forwarded through the driver.
package server

import (
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sync"

	"github.com/nixxel-company-limited/escpos-driver/adapter"
	"github.com/nixxel-company-limited/escpos-driver/escpos"
)

// Server accepts TCP connections and forwards their payload to a printer
type Server struct {
	adapter  adapter.Adapter
	printer  *escpos.Printer
	listener net.Listener
	address  string
	mu       sync.Mutex
	running  bool
	wg       sync.WaitGroup
	logger   *log.Logger
}

// New creates a new server instance
func New(device adapter.Adapter, address string) *Server {
	logger := log.New(os.Stdout, "[SERVER] ", log.LstdFlags|log.Lmsgprefix)
	return NewWithLogger(device, address, logger)
}

// NewWithLogger creates a new server instance with a custom logger
func NewWithLogger(device adapter.Adapter, address string, logger *log.Logger) *Server {
	return &Server{
		adapter: device,
		printer: escpos.NewPrinter(device),
		address: address,
		logger:  logger,
	}
}

// listen binds the TCP listener and opens the printer adapter.
func (s *Server) listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server already running")
	}

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	if !s.adapter.IsOpen() {
		s.logger.Println("Opening printer adapter...")
		if err := s.adapter.Open(); err != nil {
			listener.Close()
			return fmt.Errorf("failed to open adapter: %w", err)
		}
	}

	if err := s.printer.Initialize(); err != nil {
		listener.Close()
		return fmt.Errorf("failed to initialize printer: %w", err)
	}

	s.listener = listener
	s.running = true
	s.logger.Printf("Server listening on %s", s.address)
	return nil
}

// Start starts the TCP server and blocks until Stop is called
func (s *Server) Start() error {
	if err := s.listen(); err != nil {
		s.logger.Printf("Error: %v", err)
		return err
	}
	s.acceptConnections()
	return nil
}

// StartAsync starts the TCP server in a goroutine (non-blocking)
func (s *Server) StartAsync() error {
	if err := s.listen(); err != nil {
		s.logger.Printf("Error: %v", err)
		return err
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.acceptConnections()
	}()
	return nil
}

// acceptConnections handles incoming client connections
func (s *Server) acceptConnections() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.mu.Lock()
			running := s.running
			s.mu.Unlock()

			if !running {
				return
			}
			s.logger.Printf("Error accepting connection: %v", err)
			continue
		}

		s.logger.Printf("Client connected from %s", conn.RemoteAddr())
		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// handleConnection forwards one client's bytes to the printer
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		s.logger.Printf("Client disconnected: %s", conn.RemoteAddr())
		conn.Close()
	}()

	clientAddr := conn.RemoteAddr().String()
	buf := make([]byte, 4096)

	for {
		n, err := conn.Read(buf)
		if err != nil {
			if err != io.EOF {
				s.logger.Printf("Error reading from client %s: %v", clientAddr, err)
			}
			return
		}

		if n > 0 {
			if err := s.printer.Raw(buf[:n]); err != nil {
				s.logger.Printf("Error writing to printer: %v", err)
				return
			}
			s.logger.Printf("Forwarded %d bytes from %s to printer", n, clientAddr)
		}
	}
}

// Stop stops the TCP server
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}

	s.running = false
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener.Close()
	}

	// Wait for the accept loop and all connections to finish
	s.wg.Wait()

	if s.adapter.IsOpen() {
		if err := s.adapter.Close(); err != nil {
			s.logger.Printf("Error closing adapter: %v", err)
			return err
		}
	}

	s.logger.Println("Server stopped")
	return nil
}

// IsRunning returns whether the server is running
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Address returns the server address
func (s *Server) Address() string {
	return s.address
}

// Printer returns the driver the server prints through
func (s *Server) Printer() *escpos.Printer {
	return s.printer
}
