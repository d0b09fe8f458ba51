package program

// HasIdenticalBehavior advances two read cursors over p and other, skipping
// intron lines in each, and compares non-intron lines pairwise. Lines must
// be structurally equal; if either operand reads from the constant source,
// the corresponding constant values must also match. If one program's
// cursor reaches the end of its lines before the other's (after both have
// skipped every trailing intron), behaviour differs.
func (p *Program) HasIdenticalBehavior(other *Program) bool {
	if p == other {
		return true
	}

	constIdx := -1
	if p.env.HasConstants() {
		constIdx = p.env.ConstantsSourceIndex()
	}

	i, j := 0, 0
	for {
		i = nextNonIntron(p, i)
		j = nextNonIntron(other, j)

		pDone := i >= p.NbLines()
		oDone := j >= other.NbLines()
		if pDone != oDone {
			return false
		}
		if pDone && oDone {
			return true
		}

		lp := p.lines[i]
		lo := other.lines[j]
		if !lp.Equal(lo) {
			return false
		}

		if constIdx >= 0 {
			for k, op := range lp.Operands {
				if op.SourceIndex != constIdx {
					continue
				}
				cp, _ := p.ConstantAt(op.Location % p.NbConstants())
				co, _ := other.ConstantAt(lo.Operands[k].Location % other.NbConstants())
				if cp != co {
					return false
				}
			}
		}

		i++
		j++
	}
}

func nextNonIntron(p *Program, from int) int {
	i := from
	for i < len(p.introns) && p.introns[i] {
		i++
	}
	return i
}
