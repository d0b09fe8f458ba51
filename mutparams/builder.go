package mutparams

// Builder constructs a Parameters value by chained calls, starting from
// Default. Grounded on the teacher's core.Builder / cgra builder idiom:
// value receivers returned from each With method, a terminal Build.
type Builder struct {
	p Parameters
}

// NewBuilder returns a Builder seeded with Default values.
func NewBuilder() Builder {
	return Builder{p: *Default()}
}

func (b Builder) WithArchiveSize(n int) Builder {
	b.p.ArchiveSize = n
	return b
}

func (b Builder) WithArchivingProbability(prob float64) Builder {
	b.p.ArchivingProbability = prob
	return b
}

func (b Builder) WithNbRegisters(n int) Builder {
	b.p.NbRegisters = n
	return b
}

func (b Builder) WithNbProgramConstant(n int) Builder {
	b.p.NbProgramConstant = n
	return b
}

func (b Builder) WithUseMemoryRegisters(use bool) Builder {
	b.p.UseMemoryRegisters = use
	return b
}

func (b Builder) WithNbEdgesActivable(n int) Builder {
	b.p.NbEdgesActivable = n
	return b
}

func (b Builder) WithNbThreads(n int) Builder {
	if n < 1 {
		panic("need at least 1 thread")
	}
	b.p.NbThreads = n
	return b
}

func (b Builder) WithTPG(tpg TPGParams) Builder {
	b.p.TPG = tpg
	return b
}

func (b Builder) WithProg(prog ProgParams) Builder {
	b.p.Prog = prog
	return b
}

// Build returns the assembled Parameters.
func (b Builder) Build() *Parameters {
	p := b.p
	return &p
}
