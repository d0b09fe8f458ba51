package program

// IdentifyIntrons walks the Program's lines from last to first, tracking
// the set of register indices whose future value still matters (the
// "useful" set, seeded with register 0, the bid register). A line whose
// destination is not currently useful cannot affect the final bid and is
// marked an intron; a useful line is kept and its register-file operands
// replenish the useful set for the lines before it, scaled into register
// indices the same way the execution engine scales them at fetch time
// (modulo the register source's address space for the operand's Type, not
// the raw register count), so a windowed operand's accessed addresses
// match what progexec.Engine will actually read. Returns the number of
// lines marked intron.
func (p *Program) IdentifyIntrons() int {
	registersIdx := p.env.RegistersSourceIndex()
	registersSource := p.env.DataSource(registersIdx)
	instructions := p.env.Instructions()

	useful := map[int]struct{}{0: {}}
	nbIntrons := 0

	for i := len(p.lines) - 1; i >= 0; i-- {
		line := p.lines[i]
		if _, ok := useful[line.DestinationIndex]; !ok {
			p.introns[i] = true
			nbIntrons++
			continue
		}

		p.introns[i] = false
		delete(useful, line.DestinationIndex)

		instruction := instructions.Get(line.InstructionIndex)
		operandTypes := instruction.OperandTypes()
		for opIdx := 0; opIdx < instruction.NbOperands(); opIdx++ {
			operand := line.Operands[opIdx]
			if operand.SourceIndex != registersIdx {
				continue
			}
			t := operandTypes[opIdx]
			space := registersSource.AddressSpace(t)
			if space <= 0 {
				continue
			}
			r := operand.Location % space
			for k := 0; k < t.Window; k++ {
				useful[r+k] = struct{}{}
			}
		}
	}

	return nbIntrons
}
