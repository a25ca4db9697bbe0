package scene

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// Handle is a weak reference to a registry slot. It goes stale as soon as the slot's occupant changes.
type Handle struct {
	Index      int
	Generation uint32
}

// Relocation reports the plane that Remove moved to fill the freed slot.
type Relocation struct {
	Moved bool
	From  int
	To    int
}

// Registry is a fixed-capacity, insertion-ordered arena of planes. Removal swaps the last plane into the
// freed slot, so indices are not stable across removals; use handles or the returned Relocation.
//
// One slot is always kept free, so Count() <= Capacity()-1.
type Registry struct {
	slots       []Plane
	generations []uint32
	count       int
}

func NewRegistry(capacity int) (*Registry, error) {
	if capacity < 2 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return &Registry{
		slots:       make([]Plane, capacity),
		generations: make([]uint32, capacity),
	}, nil
}

func (r *Registry) Count() int { return r.count }

func (r *Registry) Capacity() int { return len(r.slots) }

func (r *Registry) checkIndex(index int) error {
	if index < 0 || index >= r.count {
		return errors.Wrapf(ErrIndexOutOfRange, "plane %d (count %d)", index, r.count)
	}
	return nil
}

func (r *Registry) Add(p Plane) (Handle, error) {
	if r.count >= len(r.slots)-1 {
		return Handle{Index: -1}, errors.Wrapf(ErrRegistryFull, "capacity %d", len(r.slots))
	}
	idx := r.count
	r.slots[idx] = p
	r.generations[idx]++
	r.count++
	return Handle{Index: idx, Generation: r.generations[idx]}, nil
}

// Get returns a pointer into the registry. It stays valid until the next Remove.
func (r *Registry) Get(index int) (*Plane, error) {
	if err := r.checkIndex(index); err != nil {
		return nil, err
	}
	return &r.slots[index], nil
}

func (r *Registry) Replace(index int, p Plane) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	r.slots[index] = p
	return nil
}

func (r *Registry) Remove(index int) (Relocation, error) {
	if err := r.checkIndex(index); err != nil {
		return Relocation{}, err
	}

	last := r.count - 1
	rel := Relocation{From: -1, To: -1}
	if index != last {
		r.slots[index] = r.slots[last]
		r.generations[index]++
		rel = Relocation{Moved: true, From: last, To: index}
	}
	r.slots[last] = Plane{}
	r.generations[last]++
	r.count--
	return rel, nil
}

func (r *Registry) Handle(index int) (Handle, error) {
	if err := r.checkIndex(index); err != nil {
		return Handle{Index: -1}, err
	}
	return Handle{Index: index, Generation: r.generations[index]}, nil
}

// Resolve returns the plane a handle refers to, or false when the handle is stale.
func (r *Registry) Resolve(h Handle) (*Plane, bool) {
	if h.Index < 0 || h.Index >= r.count {
		return nil, false
	}
	if r.generations[h.Index] != h.Generation {
		return nil, false
	}
	return &r.slots[h.Index], true
}

// Each visits live planes in index order until fn returns false.
func (r *Registry) Each(fn func(i int, p *Plane) bool) {
	for i := 0; i < r.count; i++ {
		if !fn(i, &r.slots[i]) {
			return
		}
	}
}

// Duplicate appends a deep copy of the plane at index, shifted one unit along X.
func (r *Registry) Duplicate(index int) (Handle, error) {
	src, err := r.Get(index)
	if err != nil {
		return Handle{Index: -1}, err
	}

	var dup Plane
	if err := copier.CopyWithOption(&dup, src, copier.Option{DeepCopy: true}); err != nil {
		return Handle{Index: -1}, errors.Wrapf(err, "copy plane %d", index)
	}
	dup.Transform.Position[0] += 1
	return r.Add(dup)
}
