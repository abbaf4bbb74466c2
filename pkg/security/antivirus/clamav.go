package antivirus

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"strings"
	"time"
)

const clamChunkSize = 64 << 10

// ClamAV talks to a clamd daemon over TCP or a unix socket.
type ClamAV struct {
	network string
	address string
	timeout time.Duration
}

var _ Scanner = (*ClamAV)(nil)

// NewClamAV accepts "host:port" or an absolute socket path.
func NewClamAV(address string, timeout time.Duration) *ClamAV {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	network := "tcp"
	if strings.HasPrefix(address, "/") {
		network = "unix"
	}
	return &ClamAV{network: network, address: address, timeout: timeout}
}

func (c *ClamAV) Name() string { return "clamav" }

func (c *ClamAV) dial(ctx context.Context) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	var d net.Dialer
	conn, err := d.DialContext(ctx, c.network, c.address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	deadline := time.Now().Add(c.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	_ = conn.SetDeadline(deadline)
	return conn, nil
}

// Ping checks that clamd answers PONG. Used by the health check.
func (c *ClamAV) Ping(ctx context.Context) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("zPING\x00")); err != nil {
		return fmt.Errorf("clamd ping: %w", err)
	}
	reply, err := readReply(conn)
	if err != nil {
		return fmt.Errorf("clamd ping: %w", err)
	}
	if reply != "PONG" {
		return fmt.Errorf("clamd ping: unexpected reply %q", reply)
	}
	return nil
}

// Scan streams data with INSTREAM in fixed size chunks.
func (c *ClamAV) Scan(ctx context.Context, data []byte) (Result, error) {
	res := Result{Scanner: c.Name()}

	conn, err := c.dial(ctx)
	if err != nil {
		return res, err
	}
	defer conn.Close()

	w := bufio.NewWriter(conn)
	if _, err := w.WriteString("zINSTREAM\x00"); err != nil {
		return res, fmt.Errorf("clamd instream: %w", err)
	}
	var size [4]byte
	for off := 0; off < len(data); off += clamChunkSize {
		end := min(off+clamChunkSize, len(data))
		binary.BigEndian.PutUint32(size[:], uint32(end-off))
		if _, err := w.Write(size[:]); err != nil {
			return res, fmt.Errorf("clamd instream: %w", err)
		}
		if _, err := w.Write(data[off:end]); err != nil {
			return res, fmt.Errorf("clamd instream: %w", err)
		}
	}
	binary.BigEndian.PutUint32(size[:], 0)
	if _, err := w.Write(size[:]); err != nil {
		return res, fmt.Errorf("clamd instream: %w", err)
	}
	if err := w.Flush(); err != nil {
		return res, fmt.Errorf("clamd instream: %w", err)
	}

	reply, err := readReply(conn)
	if err != nil {
		return res, fmt.Errorf("clamd reply: %w", err)
	}
	return parseReply(res, reply)
}

// readReply reads one NUL or newline terminated response.
func readReply(conn net.Conn) (string, error) {
	r := bufio.NewReader(conn)
	var sb strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			if sb.Len() > 0 {
				break
			}
			return "", err
		}
		if b == 0 || b == '\n' {
			break
		}
		sb.WriteByte(b)
	}
	return strings.TrimSpace(sb.String()), nil
}

// parseReply understands "stream: OK", "stream: <name> FOUND" and "... ERROR".
func parseReply(res Result, reply string) (Result, error) {
	body := reply
	if _, after, ok := strings.Cut(reply, ":"); ok {
		body = strings.TrimSpace(after)
	}
	switch {
	case body == "OK":
		return res, nil
	case strings.HasSuffix(body, " FOUND"):
		res.Infected = true
		res.Threat = strings.TrimSuffix(body, " FOUND")
		return res, nil
	case strings.HasSuffix(body, " ERROR"):
		return res, fmt.Errorf("clamd: %s", strings.TrimSuffix(body, " ERROR"))
	default:
		return res, fmt.Errorf("clamd: unexpected reply %q", reply)
	}
}
