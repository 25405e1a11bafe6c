package st7789

import (
	"errors"
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Conn errors.
var (
	ErrDCPin = errors.New("st7789: data/command (DC) GPIO pin is invalid")
)

// Transport is the byte level link to the controller.
//
// Select and Deselect bracket one transaction. Bytes transmitted after
// SetCommandMode are opcodes, bytes transmitted after SetDataMode are command
// parameters or pixel data.
type Transport interface {
	Select() error
	Deselect() error
	SetCommandMode() error
	SetDataMode() error
	Transmit(b byte) error
	Receive() (byte, error)
}

// Resetter is implemented by transports wired to the controller's reset line.
type Resetter interface {
	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Speed of the bus clock.
	Speed physic.Frequency

	// BatchSize is the number of bytes buffered before a bus transfer.
	BatchSize int

	// DC is the data/command pin, required.
	DC gpio.PinOut

	// CS is the chip select pin, leave nil if the bus driver controls it.
	CS gpio.PinOut

	// Reset pin, optional.
	Reset gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Speed:     40 * physic.MegaHertz,
	BatchSize: 4096,
}

// SPI is a Transport over a periph SPI port.
//
// Transmitted bytes are buffered and written in batches; the buffer is
// flushed whenever the data/command line changes, on Deselect and before a
// Receive.
type SPI struct {
	conn      spi.Conn
	dc        gpio.PinOut
	dcLevel   gpio.Level
	dcValid   bool
	cs        gpio.PinOut
	reset     gpio.PinOut
	pending   []byte
	batchSize int
}

// OpenSPI connects to the controller on port in SPI mode 3.
func OpenSPI(port spi.Port, config *SPIConfig) (*SPI, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}

	speed := config.Speed
	if speed == 0 {
		speed = DefaultSPIConfig.Speed
	}
	batchSize := config.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultSPIConfig.BatchSize
	}

	c, err := port.Connect(speed, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("st7789: connect %s: %w", port, err)
	}

	return &SPI{
		conn:      c,
		dc:        config.DC,
		cs:        config.CS,
		reset:     config.Reset,
		pending:   make([]byte, 0, batchSize),
		batchSize: batchSize,
	}, nil
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI %s", c.conn)
}

// Reset sets the reset pin to the provided level. It is a no-op without a reset pin.
func (c *SPI) Reset(level gpio.Level) error {
	if c.reset == nil || c.reset == gpio.INVALID {
		return nil
	}
	return c.reset.Out(level)
}

func (c *SPI) Select() error {
	return c.updateCS(gpio.Low)
}

func (c *SPI) Deselect() error {
	if err := c.Flush(); err != nil {
		_ = c.updateCS(gpio.High)
		return err
	}
	return c.updateCS(gpio.High)
}

func (c *SPI) SetCommandMode() error {
	return c.updateDC(gpio.Low)
}

func (c *SPI) SetDataMode() error {
	return c.updateDC(gpio.High)
}

func (c *SPI) Transmit(b byte) error {
	c.pending = append(c.pending, b)
	if len(c.pending) >= c.batchSize {
		return c.Flush()
	}
	return nil
}

func (c *SPI) Receive() (byte, error) {
	if err := c.Flush(); err != nil {
		return 0, err
	}
	r := make([]byte, 1)
	if err := c.conn.Tx([]byte{0x00}, r); err != nil {
		return 0, fmt.Errorf("st7789: receive: %w", err)
	}
	return r[0], nil
}

// Flush writes all buffered bytes to the bus.
func (c *SPI) Flush() error {
	if len(c.pending) == 0 {
		return nil
	}
	if debug {
		log.Printf("st7789: write %d bytes", len(c.pending))
	}
	err := c.conn.Tx(c.pending, nil)
	c.pending = c.pending[:0]
	if err != nil {
		return fmt.Errorf("st7789: transmit: %w", err)
	}
	return nil
}

func (c *SPI) updateDC(level gpio.Level) error {
	if c.dcValid && c.dcLevel == level {
		return nil
	}
	// Buffered bytes belong to the previous mode.
	if err := c.Flush(); err != nil {
		return err
	}
	if err := c.dc.Out(level); err != nil {
		return err
	}
	c.dcLevel, c.dcValid = level, true
	return nil
}

func (c *SPI) updateCS(level gpio.Level) error {
	if c.cs == nil || c.cs == gpio.INVALID {
		return nil
	}
	return c.cs.Out(level)
}

var _ Transport = (*SPI)(nil)
var _ Resetter = (*SPI)(nil)
