package antivirus

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClamd answers one connection per reply and records what was streamed.
func fakeClamd(t *testing.T, replies ...string) (string, <-chan []byte) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	got := make(chan []byte, len(replies))
	go func() {
		for _, reply := range replies {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			r := bufio.NewReader(conn)
			cmd, _ := r.ReadString(0)
			var payload bytes.Buffer
			if cmd == "zINSTREAM\x00" {
				for {
					var size [4]byte
					if _, err := io.ReadFull(r, size[:]); err != nil {
						break
					}
					n := binary.BigEndian.Uint32(size[:])
					if n == 0 {
						break
					}
					if _, err := io.CopyN(&payload, r, int64(n)); err != nil {
						break
					}
				}
			}
			got <- payload.Bytes()
			conn.Write([]byte(reply + "\x00"))
			conn.Close()
		}
	}()
	return ln.Addr().String(), got
}

func TestClamAVScanClean(t *testing.T) {
	addr, got := fakeClamd(t, "stream: OK")
	data := bytes.Repeat([]byte{0xAB}, clamChunkSize+10)

	res, err := NewClamAV(addr, time.Second).Scan(context.Background(), data)
	require.NoError(t, err)
	assert.False(t, res.Infected)
	assert.Equal(t, "clamav", res.Scanner)
	assert.Equal(t, data, <-got)
}

func TestClamAVScanInfected(t *testing.T) {
	addr, _ := fakeClamd(t, "stream: Eicar-Test-Signature FOUND")

	res, err := NewClamAV(addr, time.Second).Scan(context.Background(), []byte("x"))
	require.NoError(t, err)
	assert.True(t, res.Infected)
	assert.Equal(t, "Eicar-Test-Signature", res.Threat)
}

func TestClamAVScanError(t *testing.T) {
	addr, _ := fakeClamd(t, "INSTREAM size limit exceeded. ERROR")

	_, err := NewClamAV(addr, time.Second).Scan(context.Background(), []byte("x"))
	assert.Error(t, err)
}

func TestClamAVUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	_, err = NewClamAV(addr, 200*time.Millisecond).Scan(context.Background(), []byte("x"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClamAVPing(t *testing.T) {
	addr, _ := fakeClamd(t, "PONG", "NOPE")
	scanner := NewClamAV(addr, time.Second)

	assert.NoError(t, scanner.Ping(context.Background()))
	assert.Error(t, scanner.Ping(context.Background()))
}

func TestNopScanner(t *testing.T) {
	res, err := Nop{}.Scan(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, res.Infected)
}
