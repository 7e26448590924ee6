package printer

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"time"
)

// Printer sends raw ESC/POS bytes to a thermal printer.
type Printer interface {
	// Print writes one job. Each call opens and closes its own connection.
	Print(ctx context.Context, data []byte) error
	// Ready reports whether the printer can currently be reached.
	Ready(ctx context.Context) bool
	// Kind is "device", "network" or "none".
	Kind() string
}

// Config selects and addresses the receipt printer.
type Config struct {
	Type       string // device, network or none
	DevicePath string // e.g. /dev/usb/lp0
	Address    string // e.g. 192.168.1.100:9100
}

// New creates the printer described by cfg.
func New(cfg Config) (Printer, error) {
	switch strings.ToLower(cfg.Type) {
	case "device", "usb":
		if cfg.DevicePath == "" {
			return nil, fmt.Errorf("printer: device path is required for device printers")
		}
		return &devicePrinter{path: cfg.DevicePath}, nil
	case "network":
		if cfg.Address == "" {
			return nil, fmt.Errorf("printer: address is required for network printers")
		}
		return &networkPrinter{address: cfg.Address, dialTimeout: 5 * time.Second}, nil
	case "none", "":
		return nullPrinter{}, nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use device, network or none)", cfg.Type)
	}
}

// devicePrinter writes to a character device such as /dev/usb/lp0
type devicePrinter struct {
	path string
}

func (p *devicePrinter) Print(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.path, err)
	}
	return nil
}

func (p *devicePrinter) Ready(context.Context) bool {
	_, err := os.Stat(p.path)
	return err == nil
}

func (p *devicePrinter) Kind() string { return "device" }

// networkPrinter speaks raw TCP, usually on port 9100
type networkPrinter struct {
	address     string
	dialTimeout time.Duration
}

func (p *networkPrinter) dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{Timeout: p.dialTimeout}
	return d.DialContext(ctx, "tcp", p.address)
}

func (p *networkPrinter) Print(ctx context.Context, data []byte) error {
	conn, err := p.dial(ctx)
	if err != nil {
		return fmt.Errorf("printer: connect %s: %w", p.address, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(10 * time.Second)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetWriteDeadline(deadline)

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Ready(ctx context.Context) bool {
	conn, err := p.dial(ctx)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func (p *networkPrinter) Kind() string { return "network" }

// nullPrinter discards every job
type nullPrinter struct{}

func (nullPrinter) Print(context.Context, []byte) error { return nil }
func (nullPrinter) Ready(context.Context) bool          { return false }
func (nullPrinter) Kind() string                        { return "none" }
