package money

import (
	"fmt"
	commonerror "simple-list/internal/common/error"

	"github.com/google/uuid"
)

type Bill struct {
	value  float64
	name   string
	serial uuid.UUID
}

// NewBill prints a bill worth value dollars. name is the spoken amount, e.g. "five".
func NewBill(value float64, name string) (*Bill, error) {
	if value <= 0 {
		return nil, commonerror.NewNonPositiveValueError(name+" dollar bill", value)
	}
	return &Bill{value: value, name: name, serial: uuid.New()}, nil
}

func (b *Bill) Value() float64    { return b.value }
func (b *Bill) Name() string      { return b.name + " dollar bill" }
func (b *Bill) Color() string     { return "green" }
func (b *Bill) Serial() uuid.UUID { return b.serial }

func (b *Bill) String() string {
	return fmt.Sprintf("$%.2f %s", b.value, b.Serial())
}
