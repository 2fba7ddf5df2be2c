package money

import (
	"fmt"
	"math/rand/v2"
	commonerror "simple-list/internal/common/error"
	"strings"

	"github.com/google/uuid"
)

const (
	Heads = 1
	Tails = 0
)

const coinHeaderLen = 17

type Flippable interface {
	Flip()
	Toss()
	SetUpSide(side int)
	UpSide() int
}

type denomination struct {
	value float64
	name  string
	color string
	back  string
}

var denominations = map[string]denomination{
	"penny":      {value: .01, name: "penny", color: "copper", back: "shield"},
	"nickel":     {value: .05, name: "nickel", color: "silver", back: "Monticello"},
	"dime":       {value: .10, name: "dime", color: "silver", back: "torch"},
	"quarter":    {value: .25, name: "quarter", color: "silver", back: "eagle"},
	"halfdollar": {value: .50, name: "halfdollar", color: "silver", back: "presidential seal"},
	"dollar":     {value: 1.0, name: "dollar", color: "gold", back: "eagle"},
}

// Coin is a single minted coin. Two coins are the same coin only if they
// share a serial, see CoinEquals.
type Coin struct {
	denomination
	serial uuid.UUID
	upSide int
}

func newCoin(d denomination) *Coin {
	c := &Coin{denomination: d, serial: uuid.New()}
	c.Toss()
	return c
}

// NewCoin mints a coin by name, e.g. "quarter" or "halfdollar".
func NewCoin(name string) (*Coin, error) {
	d, ok := denominations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, commonerror.NewUnknownCoinError(name)
	}
	return newCoin(d), nil
}

func NewPenny() *Coin      { return newCoin(denominations["penny"]) }
func NewNickel() *Coin     { return newCoin(denominations["nickel"]) }
func NewDime() *Coin       { return newCoin(denominations["dime"]) }
func NewQuarter() *Coin    { return newCoin(denominations["quarter"]) }
func NewHalfDollar() *Coin { return newCoin(denominations["halfdollar"]) }
func NewDollarCoin() *Coin { return newCoin(denominations["dollar"]) }

func (c *Coin) Value() float64    { return c.value }
func (c *Coin) Name() string      { return c.name }
func (c *Coin) Color() string     { return c.color }
func (c *Coin) Back() string      { return c.back }
func (c *Coin) Serial() uuid.UUID { return c.serial }

func (c *Coin) Flip() {
	if c.upSide == Tails {
		c.upSide = Heads
	} else {
		c.upSide = Tails
	}
}

func (c *Coin) Toss() {
	c.upSide = rand.IntN(2)
}

func (c *Coin) UpSide() int {
	return c.upSide
}

func (c *Coin) SetUpSide(side int) {
	c.upSide = side
}

// Compare returns the difference c - other in cents.
func (c *Coin) Compare(other *Coin) int {
	return Cents(c) - Cents(other)
}

func (c *Coin) String() string {
	return fmt.Sprintf("%d cents", Cents(c))
}

// MarshalBinary lays a coin out as serial (16 bytes), up side (1 byte), denomination name.
func (c *Coin) MarshalBinary() ([]byte, error) {
	serial, err := c.serial.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(serial)+1+len(c.name))
	buf = append(buf, serial...)
	buf = append(buf, byte(c.upSide))
	return append(buf, c.name...), nil
}

func (c *Coin) UnmarshalBinary(data []byte) error {
	if len(data) <= coinHeaderLen {
		return commonerror.NewMalformedCoinError(len(data))
	}
	serial, err := uuid.FromBytes(data[:16])
	if err != nil {
		return err
	}
	d, ok := denominations[string(data[coinHeaderLen:])]
	if !ok {
		return commonerror.NewUnknownCoinError(string(data[coinHeaderLen:]))
	}
	c.denomination = d
	c.serial = serial
	c.upSide = int(data[16])
	return nil
}

// CoinEquals treats coins as equal only when they are the same minted coin.
// Two nil coins are equal.
func CoinEquals(a, b *Coin) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.serial == b.serial
}

// SameDenomination treats coins of the same kind as equal.
func SameDenomination(a, b *Coin) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.name == b.name
}
