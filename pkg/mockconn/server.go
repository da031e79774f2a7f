package mockconn

import (
	"bufio"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Reply tells the Server how to answer one request.
type Reply struct {
	// Raw is written back verbatim.
	Raw string
	// Close drops the connection instead of replying.
	Close bool
	// Delay is slept before replying.
	Delay time.Duration
}

// Handler answers one request, argv[0] is the command name.
type Handler func(argv []string) Reply

// Server is a minimal RESP server for tests. It accepts multibulk requests
// only and answers them through a Handler.
type Server struct {
	l net.Listener
	h Handler

	mu       sync.Mutex
	conns    []net.Conn
	requests [][]string
	accepted int

	wg sync.WaitGroup
}

// NewServer listens on a random local port.
func NewServer(h Handler) (*Server, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s := &Server{l: l, h: h}
	s.wg.Add(1)
	go s.serve()
	return s, nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.l.Addr().String()
}

// Requests returns every request received so far, in arrival order.
func (s *Server) Requests() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.requests))
	copy(out, s.requests)
	return out
}

// Accepted returns the number of accepted connections.
func (s *Server) Accepted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accepted
}

// Close stops the listener and drops every open connection.
func (s *Server) Close() {
	s.l.Close()
	s.mu.Lock()
	for _, c := range s.conns {
		c.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Server) serve() {
	defer s.wg.Done()
	for {
		sock, err := s.l.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns = append(s.conns, sock)
		s.accepted++
		s.mu.Unlock()
		s.wg.Add(1)
		go s.handle(sock)
	}
}

func (s *Server) handle(sock net.Conn) {
	defer s.wg.Done()
	defer sock.Close()
	br := bufio.NewReader(sock)
	for {
		argv, err := readRequest(br)
		if err != nil {
			return
		}
		s.mu.Lock()
		s.requests = append(s.requests, argv)
		s.mu.Unlock()
		reply := s.h(argv)
		if reply.Delay > 0 {
			time.Sleep(reply.Delay)
		}
		if reply.Close {
			return
		}
		if _, err = io.WriteString(sock, reply.Raw); err != nil {
			return
		}
	}
}

func readRequest(br *bufio.Reader) ([]string, error) {
	n, err := readHeader(br, '*')
	if err != nil {
		return nil, err
	}
	argv := make([]string, 0, n)
	for i := 0; i < n; i++ {
		size, err := readHeader(br, '$')
		if err != nil {
			return nil, err
		}
		data := make([]byte, size+2)
		if _, err = io.ReadFull(br, data); err != nil {
			return nil, err
		}
		argv = append(argv, string(data[:size]))
	}
	return argv, nil
}

func readHeader(br *bufio.Reader, marker byte) (int, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return 0, err
	}
	if len(line) < 3 || line[0] != marker {
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.Atoi(strings.TrimRight(line[1:], "\r\n"))
}
