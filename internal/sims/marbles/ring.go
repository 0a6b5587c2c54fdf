package marbles

// Ring is a circular sequence of marbles stored in a growable ring buffer.
// The front is the current marble; moving clockwise walks towards the back.
type Ring struct {
	buf  []int
	head int
	size int
}

// NewRing returns a ring holding the given values in clockwise order.
func NewRing(values ...int) *Ring {
	r := &Ring{buf: make([]int, max(len(values), 8))}
	for _, v := range values {
		r.PushBack(v)
	}
	return r
}

// Len returns the number of marbles in the ring.
func (r *Ring) Len() int { return r.size }

// Front returns the current marble. The ring must not be empty.
func (r *Ring) Front() int { return r.buf[r.head] }

// PushFront inserts v as the new current marble, counter-clockwise of the old one.
func (r *Ring) PushFront(v int) {
	r.grow()
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = v
	r.size++
}

// PushBack inserts v immediately counter-clockwise of the current marble.
func (r *Ring) PushBack(v int) {
	r.grow()
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++
}

// PopFront removes and returns the current marble; the marble clockwise of
// it becomes current.
func (r *Ring) PopFront() (int, bool) {
	if r.size == 0 {
		return 0, false
	}
	v := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return v, true
}

// PopBack removes and returns the marble counter-clockwise of the current one.
func (r *Ring) PopBack() (int, bool) {
	if r.size == 0 {
		return 0, false
	}
	r.size--
	return r.buf[(r.head+r.size)%len(r.buf)], true
}

// Rotate moves the current position n marbles clockwise, or -n marbles
// counter-clockwise when n is negative.
func (r *Ring) Rotate(n int) {
	if r.size < 2 {
		return
	}
	n %= r.size
	if n < 0 {
		n += r.size
	}
	// When the buffer is full the rotation is a head shift.
	if r.size == len(r.buf) {
		r.head = (r.head + n) % len(r.buf)
		return
	}
	if n <= r.size/2 {
		for ; n > 0; n-- {
			v, _ := r.PopFront()
			r.PushBack(v)
		}
		return
	}
	for n = r.size - n; n > 0; n-- {
		v, _ := r.PopBack()
		r.PushFront(v)
	}
}

// Values returns the marbles in clockwise order starting at the current one.
func (r *Ring) Values() []int {
	out := make([]int, r.size)
	for i := range out {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

func (r *Ring) grow() {
	if r.size < len(r.buf) {
		return
	}
	next := make([]int, 2*len(r.buf))
	for i := 0; i < r.size; i++ {
		next[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	r.buf = next
	r.head = 0
}
