package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/username/yomi-daytime/internal/clock"
	"github.com/username/yomi-daytime/internal/yomi"
)

// lineEnd terminates every reading written to a client
const lineEnd = "\r\n"

// Backoff bounds for retrying temporary accept failures
const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// Daemon serves the current moment's reading to every TCP client that connects
type Daemon struct {
	addr         string
	clock        clock.Clock
	writeTimeout time.Duration
	logger       *zap.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	listener net.Listener
	conns    sync.WaitGroup
}

// New creates a daemon that will listen on addr
func New(addr string, c clock.Clock, writeTimeout time.Duration, logger *zap.Logger) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		addr:         addr,
		clock:        c,
		writeTimeout: writeTimeout,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Listen binds the TCP listener. It is called by Serve if needed.
func (d *Daemon) Listen() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listener != nil {
		return nil
	}

	listener, err := net.Listen("tcp", d.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", d.addr, err)
	}
	d.listener = listener
	return nil
}

// Addr returns the bound listener address, or nil before Listen
func (d *Daemon) Addr() net.Addr {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listener == nil {
		return nil
	}
	return d.listener.Addr()
}

// Start runs the daemon until SIGINT/SIGTERM or Stop
func (d *Daemon) Start() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			d.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			d.Stop()
		case <-d.ctx.Done():
		}
	}()

	return d.Serve(d.ctx)
}

// Serve accepts connections until ctx is cancelled or Stop is called, then
// waits for in-flight connections to finish.
func (d *Daemon) Serve(ctx context.Context) error {
	if err := d.Listen(); err != nil {
		return err
	}

	d.logger.Info("Server is ready", zap.String("addr", d.Addr().String()))

	go func() {
		select {
		case <-ctx.Done():
		case <-d.ctx.Done():
		}
		d.closeListener()
	}()

	defer d.conns.Wait()

	var delay time.Duration
	for {
		conn, err := d.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || d.ctx.Err() != nil {
				d.logger.Info("Daemon stopped")
				return nil
			}
			if isTemporary(err) {
				if delay == 0 {
					delay = minAcceptDelay
				} else {
					delay *= 2
				}
				if delay > maxAcceptDelay {
					delay = maxAcceptDelay
				}
				d.logger.Warn("Accept failed, retrying",
					zap.Duration("delay", delay),
					zap.Error(err))

				select {
				case <-time.After(delay):
				case <-ctx.Done():
				case <-d.ctx.Done():
				}
				continue
			}
			d.Stop()
			return fmt.Errorf("accept: %w", err)
		}
		delay = 0

		d.logger.Debug("Accepted connection",
			zap.String("remote", conn.RemoteAddr().String()))

		d.conns.Add(1)
		go func() {
			defer d.conns.Done()
			d.handle(conn)
		}()
	}
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
	d.closeListener()
}

func (d *Daemon) closeListener() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listener != nil {
		_ = d.listener.Close()
	}
}

// handle writes one reading and closes conn. Failures end only this connection.
func (d *Daemon) handle(conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()

	reading, err := yomi.Format(clock.Snapshot(d.clock))
	if err != nil {
		d.logger.Error("Render failed",
			zap.String("remote", remote),
			zap.Error(err))
		return
	}

	if d.writeTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(d.writeTimeout)); err != nil {
			d.logger.Warn("Failed to set write deadline",
				zap.String("remote", remote),
				zap.Error(err))
		}
	}

	if _, err := conn.Write([]byte(reading + lineEnd)); err != nil {
		d.logger.Warn("Write failed",
			zap.String("remote", remote),
			zap.Error(err))
		return
	}

	d.logger.Debug("Reading sent",
		zap.String("remote", remote),
		zap.String("reading", reading))
}

// isTemporary reports whether an accept error is worth retrying, such as
// running out of file descriptors.
func isTemporary(err error) bool {
	if errors.Is(err, syscall.EMFILE) || errors.Is(err, syscall.ENFILE) ||
		errors.Is(err, syscall.ECONNABORTED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var tempErr interface{ Temporary() bool }
	return errors.As(err, &tempErr) && tempErr.Temporary()
}
