package sigflow

// A Runnable is anything the time domain can execute once per control
// cycle. Run must not block and must complete in bounded time.
//
type Runnable interface {
	Run()
}

// A Block is the scheduling unit of a control graph: a named computation
// owning a fixed set of input and output ports. An external scheduler
// invokes Run once per cycle, in an order it alone decides.
//
type Block interface {
	Runnable
	Name() string
}

// block is the common base of all port-owning blocks. It is not copyable:
// a copy would alias the ports' back-references to their owner.
type block struct {
	noCopy noCopy
	name   string
}

// Name returns the block's display name.
//
func (b *block) Name() string { return b.name }

// noCopy triggers go vet's copylocks check on types embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
