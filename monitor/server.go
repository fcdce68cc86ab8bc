package monitor

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Stats is the snapshot of training progress served over HTTP.
type Stats struct {
	Experiment  string  `json:"experiment"`
	Episode     int     `json:"episode"`
	Episodes    int     `json:"episodes"`
	BufferSeen  int     `json:"buffer_seen"`
	BufferReady bool    `json:"buffer_ready"`
	LastReturn  float64 `json:"last_return"`
}

// Server serves read-only training stats while an experiment runs. The
// trainer publishes snapshots; the server never touches the replay
// store itself.
type Server struct {
	Addr   string
	ctx    context.Context
	server *http.Server

	lock  *sync.Mutex
	stats Stats
}

func NewServer(ctx context.Context, addr string) *Server {
	s := &Server{
		Addr: addr,
		ctx:  ctx,
		lock: new(sync.Mutex),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/stats", s.handleStats)
	r.GET("/health", healthHandler)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

func (s *Server) Start() {
	go func() { // starts the server to listen for requests
		s.server.ListenAndServe()
	}()

	go func() { // wait for cancel signal and shutdown the server
		<-s.ctx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.server.Shutdown(ctx)
	}()
}

// Publish replaces the served snapshot.
func (s *Server) Publish(stats Stats) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.stats = stats
}

func (s *Server) handleStats(c *gin.Context) {
	s.lock.Lock()
	stats := s.stats
	s.lock.Unlock()

	c.JSON(http.StatusOK, stats)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
