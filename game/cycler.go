package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat indices 0..size-1 in the current direction.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

// Peek returns the seat steps away from the current one without moving.
func (c *Cycler) Peek(steps int) int {
	return Normalize(c.current+steps*c.direction, c.size)
}

func (c *Cycler) Advance(steps int) int {
	c.current = c.Peek(steps)
	return c.current
}

func (c *Cycler) Next() int {
	return c.Advance(1)
}

func (c *Cycler) Reverse() int {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
	return c.direction
}

// Normalize maps any index onto [0, size).
func Normalize(index int, size int) int {
	return (index%size + size) % size
}
