// Package mutparams holds MutationParameters: the tunables every mutator
// operator and the populate routine read. Grounded on the teacher's
// core/program.go YAML-struct-tag configuration style.
package mutparams

// TPGParams controls graph-shape and TPG-level mutation probabilities.
type TPGParams struct {
	NbActions                           int     `yaml:"nbActions"`
	NbRoots                              int     `yaml:"nbRoots"`
	MaxInitOutgoingEdges                 int     `yaml:"maxInitOutgoingEdges"`
	MaxOutgoingEdges                     int     `yaml:"maxOutgoingEdges"`
	PEdgeDeletion                        float64 `yaml:"pEdgeDeletion"`
	PEdgeAddition                        float64 `yaml:"pEdgeAddition"`
	PProgramMutation                     float64 `yaml:"pProgramMutation"`
	PEdgeDestinationChange               float64 `yaml:"pEdgeDestinationChange"`
	PEdgeDestinationIsAction             float64 `yaml:"pEdgeDestinationIsAction"`
	ForceProgramBehaviorChangeOnMutation bool    `yaml:"forceProgramBehaviorChangeOnMutation"`
}

// ProgParams controls program-level mutation.
type ProgParams struct {
	MaxProgramSize    int     `yaml:"maxProgramSize"`
	PDelete           float64 `yaml:"pDelete"`
	PAdd              float64 `yaml:"pAdd"`
	PMutate           float64 `yaml:"pMutate"`
	PSwap             float64 `yaml:"pSwap"`
	PConstantMutation float64 `yaml:"pConstantMutation"`
	PNewProgram       float64 `yaml:"pNewProgram"`
	MinConstValue     int32   `yaml:"minConstValue"`
	MaxConstValue     int32   `yaml:"maxConstValue"`
}

// Parameters is the full MutationParameters record from spec.md §6. Fields
// documented there as "agent-level" (nbIterationsPerPolicyEvaluation,
// nbGenerations, ...) are carried opaquely: the core never reads them, but
// loading and round-tripping them is part of this package's contract so an
// external agent can share one configuration file with the core.
type Parameters struct {
	ArchiveSize                     int     `yaml:"archiveSize"`
	ArchivingProbability            float64 `yaml:"archivingProbability"`
	NbIterationsPerPolicyEvaluation int     `yaml:"nbIterationsPerPolicyEvaluation"`
	MaxNbActionsPerEval             int     `yaml:"maxNbActionsPerEval"`
	MaxNbEvaluationPerPolicy        int     `yaml:"maxNbEvaluationPerPolicy"`
	NbGenerations                   int     `yaml:"nbGenerations"`
	NbIterationsPerJob              int     `yaml:"nbIterationsPerJob"`
	RatioDeletedRoots               float64 `yaml:"ratioDeletedRoots"`
	NbRegisters                     int     `yaml:"nbRegisters"`
	NbProgramConstant               int     `yaml:"nbProgramConstant"`
	UseMemoryRegisters              bool    `yaml:"useMemoryRegisters"`
	NbEdgesActivable                int     `yaml:"nbEdgesActivable"`
	NbThreads                       int     `yaml:"nbThreads"`
	DoValidation                    bool    `yaml:"doValidation"`

	TPG  TPGParams  `yaml:"tpg"`
	Prog ProgParams `yaml:"prog"`
}

// Default returns a reasonable baseline Parameters value. Callers
// typically start from Default and override through the Builder or direct
// field assignment.
func Default() *Parameters {
	return &Parameters{
		ArchiveSize:           50,
		ArchivingProbability:  0.5,
		NbRegisters:           8,
		NbProgramConstant:     0,
		UseMemoryRegisters:    false,
		NbEdgesActivable:      1,
		NbThreads:             1,
		TPG: TPGParams{
			NbActions:                           2,
			NbRoots:                             10,
			MaxInitOutgoingEdges:                3,
			MaxOutgoingEdges:                    5,
			PEdgeDeletion:                       0.7,
			PEdgeAddition:                       0.7,
			PProgramMutation:                    0.2,
			PEdgeDestinationChange:               0.1,
			PEdgeDestinationIsAction:             0.5,
			ForceProgramBehaviorChangeOnMutation: true,
		},
		Prog: ProgParams{
			MaxProgramSize:    96,
			PDelete:           0.5,
			PAdd:              0.5,
			PMutate:           1.0,
			PSwap:             1.0,
			PConstantMutation: 0.5,
			PNewProgram:       0.5,
			MinConstValue:     -10,
			MaxConstValue:     10,
		},
	}
}

// EffectiveNbEdgesActivable applies the Open Question resolution from
// SPEC_FULL.md §9: 0 means single-action semantics, treated as 1.
func (p *Parameters) EffectiveNbEdgesActivable() int {
	if p.NbEdgesActivable <= 0 {
		return 1
	}
	return p.NbEdgesActivable
}
