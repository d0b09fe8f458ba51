package program

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Dump renders the Program as a human-readable table: one row per line,
// flagging introns, plus the constant vector. Matches the teacher's
// core/util.go PrintState table layout, adapted to a Program's line/
// constant shape instead of a tile's register/buffer state.
func (p *Program) Dump() string {
	var b strings.Builder

	lines := table.NewWriter()
	lines.SetTitle(fmt.Sprintf("Program (%d lines)", p.NbLines()))
	lines.AppendHeader(table.Row{"#", "intron", "instr", "dest", "operands"})
	for i, line := range p.lines {
		operands := make([]string, len(line.Operands))
		for k, op := range line.Operands {
			operands[k] = fmt.Sprintf("%d|%d", op.SourceIndex, op.Location)
		}
		lines.AppendRow(table.Row{
			i, p.introns[i], line.InstructionIndex, line.DestinationIndex,
			strings.Join(operands, " "),
		})
	}
	b.WriteString(lines.Render())
	b.WriteString("\n")

	if p.NbConstants() > 0 {
		constants := table.NewWriter()
		constants.SetTitle("Constants")
		row := make(table.Row, p.NbConstants())
		for i := range row {
			row[i], _ = p.ConstantAt(i)
		}
		constants.AppendRow(row)
		b.WriteString(constants.Render())
		b.WriteString("\n")
	}

	return b.String()
}
