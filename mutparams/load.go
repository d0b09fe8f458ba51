package mutparams

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tangled-program/tpgo/diag"
)

var topLevelKeys = map[string]bool{
	"archiveSize": true, "archivingProbability": true,
	"nbIterationsPerPolicyEvaluation": true, "maxNbActionsPerEval": true,
	"maxNbEvaluationPerPolicy": true, "nbGenerations": true,
	"nbIterationsPerJob": true, "ratioDeletedRoots": true,
	"nbRegisters": true, "nbProgramConstant": true,
	"useMemoryRegisters": true, "nbEdgesActivable": true,
	"nbThreads": true, "doValidation": true,
	"tpg": true, "prog": true,
}

var tpgKeys = map[string]bool{
	"nbActions": true, "nbRoots": true,
	"maxInitOutgoingEdges": true, "maxOutgoingEdges": true,
	"pEdgeDeletion": true, "pEdgeAddition": true,
	"pProgramMutation": true, "pEdgeDestinationChange": true,
	"pEdgeDestinationIsAction": true, "forceProgramBehaviorChangeOnMutation": true,
}

var progKeys = map[string]bool{
	"maxProgramSize": true, "pDelete": true, "pAdd": true,
	"pMutate": true, "pSwap": true, "pConstantMutation": true,
	"pNewProgram": true, "minConstValue": true, "maxConstValue": true,
}

// Load reads a YAML MutationParameters file. Keys not recognised at the
// top level, or under tpg/prog, are reported in the returned diag.Log
// rather than rejected: an agent-level key that the core doesn't read is
// not an error, but it is worth surfacing in case it is a typo of a
// core key.
func Load(path string) (*Parameters, *diag.Log, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(raw)
}

// Parse decodes a YAML document into Parameters, starting from Default
// and overriding whatever the document specifies.
func Parse(raw []byte) (*Parameters, *diag.Log, error) {
	log := &diag.Log{}

	var probe map[string]any
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return nil, nil, err
	}
	checkUnknown(probe, topLevelKeys, log)
	if tpgNode, ok := probe["tpg"].(map[string]any); ok {
		checkUnknown(tpgNode, tpgKeys, log)
	}
	if progNode, ok := probe["prog"].(map[string]any); ok {
		checkUnknown(progNode, progKeys, log)
	}

	p := Default()
	if err := yaml.Unmarshal(raw, p); err != nil {
		return nil, nil, err
	}
	return p, log, nil
}

func checkUnknown(node map[string]any, known map[string]bool, log *diag.Log) {
	for key := range node {
		if !known[key] {
			log.Add(diag.UnknownKey, "unrecognized mutation parameter key: "+key)
		}
	}
}
